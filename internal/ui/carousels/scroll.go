package carousels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"swipedemo/internal/carousel"
	"swipedemo/internal/domain"
	"swipedemo/internal/ui/views"
)

// Scroll is a long strip of one-cell bars that snaps to the bar under the
// centre marker, with a slider bound to the current index.
//
// Body rows: 0 counter, 1 marker, 2..rows-2 strip, rows-1 slider.
type Scroll struct {
	base
	sliding bool
}

// NewScroll creates the scroll carousel with count bars
func NewScroll(count int, opts Options) (*Scroll, error) {
	b, err := newBase(domain.ScrollView, carousel.NearestIndex, count, opts)
	if err != nil {
		return nil, err
	}
	b.state, _ = b.nav.Reduce(b.state, carousel.Resize{ItemWidth: 1})
	return &Scroll{base: b}, nil
}

func (s *Scroll) Resize(width, rows int) {
	s.width, s.rows = width, rows
	s.pageStep = max(width/2, 1)
}

func (s *Scroll) stripRows() int {
	return max(s.rows-3, 1)
}

func (s *Scroll) sliderRow() int {
	return s.rows - 1
}

func (s *Scroll) Update(msg tea.Msg) tea.Cmd {
	if cmd, ok := s.updateCommon(msg); ok {
		return cmd
	}
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}

	onSlider := mouse.Y == s.sliderRow()
	if s.sliding || (onSlider && mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft) {
		return s.handleSlider(mouse)
	}
	inStrip := mouse.Y >= 1 && mouse.Y < s.sliderRow()
	return s.handleDrag(mouse, inStrip)
}

func (s *Scroll) handleSlider(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		s.sliding = true
	case tea.MouseActionRelease:
		s.sliding = false
	}
	start, length := views.SliderTrack(s.width)
	x := min(max(msg.X, start), start+length-1)
	p, ok := views.SliderProgressAt(x, s.width)
	if !ok {
		return nil
	}
	return s.dispatch(carousel.SliderChange{Progress: p})
}

func (s *Scroll) View() string {
	bars := s.renderer.Bars
	lines := []string{
		bars.RenderCounter(s.state.Index, s.width),
		bars.RenderMarker(s.width),
		bars.RenderStrip(views.StripView{
			Width:    s.width,
			Rows:     s.stripRows(),
			Position: s.position(),
			Count:    s.state.ItemCount,
		}),
		bars.RenderSlider(s.state.Progress(), s.width),
	}
	return strings.Join(lines, "\n")
}
