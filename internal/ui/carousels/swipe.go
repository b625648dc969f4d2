package carousels

import (
	tea "github.com/charmbracelet/bubbletea"

	"swipedemo/internal/carousel"
	"swipedemo/internal/domain"
	"swipedemo/internal/ui/views"
)

// Swipe is the hand-rolled pager. Pages sit side by side, offset by
// -Index*width plus the live drag, and the drag end is resolved by
// carousel.DragEndIndex.
type Swipe struct {
	base
}

// NewSwipe creates the custom swipe carousel with count pages
func NewSwipe(count int, opts Options) (*Swipe, error) {
	b, err := newBase(domain.Custom, carousel.DragEndIndex, count, opts)
	if err != nil {
		return nil, err
	}
	if opts.DragGain > 0 {
		b.gain = opts.DragGain
	}
	return &Swipe{base: b}, nil
}

func (s *Swipe) Resize(width, rows int) {
	s.width, s.rows = width, rows
	s.state, _ = s.nav.Reduce(s.state, carousel.Resize{ItemWidth: float64(width)})
}

func (s *Swipe) Update(msg tea.Msg) tea.Cmd {
	if cmd, ok := s.updateCommon(msg); ok {
		return cmd
	}
	if mouse, ok := msg.(tea.MouseMsg); ok {
		return s.handleDrag(mouse, mouse.Y >= 0 && mouse.Y < s.rows)
	}
	return nil
}

func (s *Swipe) View() string {
	return s.renderer.Pages.RenderPages(views.PageStrip{
		Width:      s.width,
		Rows:       s.rows,
		Count:      s.state.ItemCount,
		Position:   s.position(),
		ShowLabels: true,
	})
}
