package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Counter        lipgloss.Style
	Marker         lipgloss.Style
	SliderLabel    lipgloss.Style
	PageLabel      lipgloss.Style
	Segment        lipgloss.Style
	SegmentActive  lipgloss.Style
	SegmentDivider lipgloss.Style
	Dragging       lipgloss.Style
	Ready          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:            lipgloss.NewStyle().Faint(true),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Counter:        lipgloss.NewStyle().Bold(true),
		Marker:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		SliderLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		PageLabel:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		Segment:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		SegmentActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("254")).Bold(true),
		SegmentDivider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236")),
		Dragging:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Ready:          lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
