package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chrome rows around the carousel body: title, gap, gap, picker, gap, status, help
const chromeRows = 7

// MinBodyRows is the smallest body every carousel can draw
const MinBodyRows = 4

// Layout fixes the row of every part of the screen so mouse events can be
// routed without re-rendering
type Layout struct {
	Width      int
	Height     int
	BodyTop    int
	BodyHeight int
	PickerRow  int
	StatusRow  int
	HelpRow    int
}

// NewLayout fits a body of the preferred height into the terminal
func NewLayout(width, height, preferredBody int) Layout {
	body := preferredBody
	if height > 0 {
		body = min(body, height-chromeRows)
	}
	body = max(body, MinBodyRows)

	l := Layout{
		Width:      max(width, 1),
		Height:     height,
		BodyTop:    2,
		BodyHeight: body,
	}
	l.PickerRow = l.BodyTop + l.BodyHeight + 1
	l.StatusRow = l.PickerRow + 2
	l.HelpRow = l.StatusRow + 1
	return l
}

// InBody reports whether row y is inside the carousel body
func (l Layout) InBody(y int) bool {
	return y >= l.BodyTop && y < l.BodyTop+l.BodyHeight
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Layout   Layout
	Title    string
	Badge    string // right side of the title line
	Dragging bool
	Body     string
	Labels   []string
	Selected int
	Status   string
	Help     string
	Ready    bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	Bars   *BarRenderer
	Pages  *PageRenderer
	Picker *PickerRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		Bars:   NewBarRenderer(styles),
		Pages:  NewPageRenderer(styles),
		Picker: NewPickerRenderer(styles),
	}
}

// Styles returns the shared style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	l := state.Layout
	lines := make([]string, 0, l.HelpRow+1)

	lines = append(lines, r.titleLine(state))
	lines = append(lines, "")

	body := strings.Split(state.Body, "\n")
	for i := 0; i < l.BodyHeight; i++ {
		if i < len(body) {
			lines = append(lines, body[i])
		} else {
			lines = append(lines, "")
		}
	}

	lines = append(lines, "")
	lines = append(lines, r.Picker.Render(state.Labels, state.Selected, l.Width))
	lines = append(lines, "")
	lines = append(lines, r.styles.Status.Render(truncate(state.Status, l.Width)))
	lines = append(lines, state.Help)

	return strings.Join(lines, "\n")
}

func (r *Renderer) titleLine(state ViewState) string {
	logo := r.styles.Title.Render(state.Title)
	if state.Ready {
		logo += " " + r.styles.Ready.Render("__READY__")
	}

	badgeStyle := r.styles.Dim
	if state.Dragging {
		badgeStyle = r.styles.Dragging
	}
	badge := badgeStyle.Render(state.Badge)

	pad := state.Layout.Width - lipgloss.Width(logo) - lipgloss.Width(badge)
	if pad < 2 {
		return logo + "  " + badge
	}
	return logo + strings.Repeat(" ", pad) + badge
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
