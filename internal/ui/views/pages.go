package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"swipedemo/internal/domain"
)

// PageRenderer draws full-width pages for the paging and custom carousels
type PageRenderer struct {
	styles *Styles
}

// NewPageRenderer creates a new page renderer
func NewPageRenderer(styles *Styles) *PageRenderer {
	return &PageRenderer{styles: styles}
}

// PageStrip describes a horizontal row of pages viewed through a window as
// wide as one page
type PageStrip struct {
	Width      int
	Rows       int
	Count      int
	Position   float64 // fractional page index at the left edge of the window
	ShowLabels bool
}

// PageAtColumn returns the page drawn in column x, or -1 for empty space
// beyond either end
func (s PageStrip) PageAtColumn(x int) int {
	if s.Width <= 0 {
		return -1
	}
	idx := floorDiv(s.offset()+x, s.Width)
	if idx < 0 || idx >= s.Count {
		return -1
	}
	return idx
}

// offset is the column of the page row at the left edge of the window
func (s PageStrip) offset() int {
	return int(math.Round(s.Position * float64(s.Width)))
}

// RenderPages draws the visible slice of the page row
func (r *PageRenderer) RenderPages(s PageStrip) string {
	if s.Width <= 0 || s.Rows <= 0 {
		return ""
	}

	labelRow := s.Rows / 2
	offset := s.offset()

	lines := make([]string, s.Rows)
	for row := 0; row < s.Rows; row++ {
		var line strings.Builder
		x := 0
		for x < s.Width {
			// Draw runs of columns belonging to the same page with one style.
			abs := offset + x
			idx := floorDiv(abs, s.Width)
			runEnd := min((idx+1)*s.Width-offset, s.Width)
			run := runEnd - x

			if idx < 0 || idx >= s.Count {
				line.WriteString(strings.Repeat(" ", run))
				x = runEnd
				continue
			}

			page := domain.Page{Index: idx}
			text := strings.Repeat(" ", run)
			if s.ShowLabels && row == labelRow {
				text = r.labelSlice(page.Label(), s.Width, abs-idx*s.Width, run)
			}
			line.WriteString(r.styles.PageLabel.Background(lipgloss.Color(page.Color())).Render(text))
			x = runEnd
		}
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}

// labelSlice returns columns [from, from+n) of a page-wide row with label centred
func (r *PageRenderer) labelSlice(label string, width, from, n int) string {
	full := []rune(lipgloss.PlaceHorizontal(width, lipgloss.Center, label))
	end := min(from+n, len(full))
	if from >= end {
		return strings.Repeat(" ", n)
	}
	return string(full[from:end]) + strings.Repeat(" ", n-(end-from))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// RenderDots draws the page indicator centred in width
func (r *PageRenderer) RenderDots(page, total, width int) string {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.SetTotalPages(total)
	p.Page = page
	p.ActiveDot = r.styles.Marker.Render("•") + " "
	p.InactiveDot = r.styles.Dim.Render("•") + " "
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.TrimRight(p.View(), " "))
}
