package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"swipedemo/internal/domain"
)

// eighths are the partial block glyphs used for the top cell of a bar
var eighths = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// sliderLabelWidth is the width of "0.00 " on either side of the slider
const sliderLabelWidth = 5

// BarRenderer draws the scroll carousel
type BarRenderer struct {
	styles *Styles
	slider progress.Model
}

// NewBarRenderer creates a new bar renderer
func NewBarRenderer(styles *Styles) *BarRenderer {
	return &BarRenderer{
		styles: styles,
		slider: progress.New(
			progress.WithSolidFill("#B0B0B0"),
			progress.WithoutPercentage(),
			progress.WithFillCharacters('━', '─'),
		),
	}
}

// StripView describes the visible part of the bar sequence
type StripView struct {
	Width    int
	Rows     int
	Position float64 // fractional index under the centre marker
	Count    int
}

// CenterColumn is the column of the centre marker for a strip of width w
func CenterColumn(width int) int {
	return width / 2
}

// IndexAtColumn returns the bar index drawn in column x, which may be outside
// [0, count) for the blank padding at either end
func (v StripView) IndexAtColumn(x int) int {
	return int(math.Round(v.Position)) + x - CenterColumn(v.Width)
}

// RenderStrip draws the bars bottom-aligned, one column per bar
func (r *BarRenderer) RenderStrip(v StripView) string {
	if v.Width <= 0 || v.Rows <= 0 {
		return ""
	}

	cells := make([][]string, v.Rows)
	for row := range cells {
		cells[row] = make([]string, v.Width)
	}

	for x := 0; x < v.Width; x++ {
		idx := v.IndexAtColumn(x)
		if idx < 0 || idx >= v.Count {
			for row := 0; row < v.Rows; row++ {
				cells[row][x] = " "
			}
			continue
		}
		bar := domain.Bar{Index: idx}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color().Hex()))
		h := bar.Height(v.Rows)
		for fromBottom := 0; fromBottom < v.Rows; fromBottom++ {
			row := v.Rows - 1 - fromBottom
			fill := h - float64(fromBottom)
			cells[row][x] = style.Render(glyph(fill))
		}
	}

	lines := make([]string, v.Rows)
	for row := range cells {
		lines[row] = strings.Join(cells[row], "")
	}
	return strings.Join(lines, "\n")
}

func glyph(fill float64) string {
	switch {
	case fill >= 1:
		return eighths[8]
	case fill <= 0:
		return eighths[0]
	default:
		return eighths[int(fill*8)]
	}
}

// RenderMarker draws the centre marker row
func (r *BarRenderer) RenderMarker(width int) string {
	if width <= 0 {
		return ""
	}
	c := CenterColumn(width)
	return strings.Repeat(" ", c) + r.styles.Marker.Render("▼") + strings.Repeat(" ", width-c-1)
}

// RenderCounter draws the "Current Index: N" heading centred in width
func (r *BarRenderer) RenderCounter(index, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, r.styles.Counter.Render(fmt.Sprintf("Current Index: %d", index)))
}

// SliderTrack returns the first column and width of the slider track
func SliderTrack(width int) (start, length int) {
	return sliderLabelWidth, max(width-2*sliderLabelWidth, 1)
}

// SliderProgressAt converts a column on the slider row to a progress value.
// ok is false when x is outside the track.
func SliderProgressAt(x, width int) (p float64, ok bool) {
	start, length := SliderTrack(width)
	if x < start || x >= start+length {
		return 0, false
	}
	if length == 1 {
		return 0, true
	}
	return float64(x-start) / float64(length-1), true
}

// RenderSlider draws "progress [track] 1-progress"
func (r *BarRenderer) RenderSlider(p float64, width int) string {
	_, length := SliderTrack(width)
	r.slider.Width = length
	left := r.styles.SliderLabel.Render(fmt.Sprintf("%.2f ", p))
	right := r.styles.SliderLabel.Render(fmt.Sprintf(" %.2f", 1-p))
	return left + r.slider.ViewAs(p) + right
}
