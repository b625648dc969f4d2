package carousels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"swipedemo/internal/carousel"
	"swipedemo/internal/domain"
	"swipedemo/internal/ui/views"
)

// Paging shows one full-width page at a time with page dots below. A swipe
// past half a page flips to the neighbouring page, never further.
type Paging struct {
	base
}

// NewPaging creates the paging carousel with count pages
func NewPaging(count int, opts Options) (*Paging, error) {
	b, err := newBase(domain.TabView, carousel.AdjacentIndex, count, opts)
	if err != nil {
		return nil, err
	}
	if opts.DragGain > 0 {
		b.gain = opts.DragGain
	}
	return &Paging{base: b}, nil
}

func (p *Paging) Resize(width, rows int) {
	p.width, p.rows = width, rows
	p.state, _ = p.nav.Reduce(p.state, carousel.Resize{ItemWidth: float64(width)})
}

func (p *Paging) pageRows() int {
	return max(p.rows-1, 1)
}

func (p *Paging) Update(msg tea.Msg) tea.Cmd {
	if cmd, ok := p.updateCommon(msg); ok {
		return cmd
	}
	if mouse, ok := msg.(tea.MouseMsg); ok {
		return p.handleDrag(mouse, mouse.Y >= 0 && mouse.Y < p.pageRows())
	}
	return nil
}

func (p *Paging) View() string {
	pages := p.renderer.Pages
	return strings.Join([]string{
		pages.RenderPages(views.PageStrip{
			Width:    p.width,
			Rows:     p.pageRows(),
			Count:    p.state.ItemCount,
			Position: p.position(),
		}),
		pages.RenderDots(p.state.Index, p.state.ItemCount, p.width),
	}, "\n")
}
