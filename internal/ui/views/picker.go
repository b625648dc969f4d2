package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Segment is the column range [Start, End) of one picker option
type Segment struct {
	Start int
	End   int
}

// PickerRenderer draws the segmented implementation switcher
type PickerRenderer struct {
	styles *Styles
}

// NewPickerRenderer creates a new picker renderer
func NewPickerRenderer(styles *Styles) *PickerRenderer {
	return &PickerRenderer{styles: styles}
}

// PickerLayout computes the segment positions for labels centred in width
func PickerLayout(labels []string, width int) []Segment {
	total := 0
	for i, l := range labels {
		total += lipgloss.Width(l) + 2
		if i > 0 {
			total++
		}
	}
	x := max((width-total)/2, 0)

	segs := make([]Segment, len(labels))
	for i, l := range labels {
		if i > 0 {
			x++
		}
		w := lipgloss.Width(l) + 2
		segs[i] = Segment{Start: x, End: x + w}
		x += w
	}
	return segs
}

// SegmentAt returns the index of the segment under column x, or -1
func SegmentAt(segs []Segment, x int) int {
	for i, s := range segs {
		if x >= s.Start && x < s.End {
			return i
		}
	}
	return -1
}

// Render draws the picker with selected highlighted
func (p *PickerRenderer) Render(labels []string, selected, width int) string {
	segs := PickerLayout(labels, width)
	if len(segs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", segs[0].Start))
	for i, l := range labels {
		if i > 0 {
			b.WriteString(p.styles.SegmentDivider.Render("│"))
		}
		style := p.styles.Segment
		if i == selected {
			style = p.styles.SegmentActive
		}
		b.WriteString(style.Render(" " + l + " "))
	}
	return b.String()
}
