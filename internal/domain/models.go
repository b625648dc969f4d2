package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Implementation identifies one of the carousel variants
type Implementation int

const (
	ScrollView Implementation = iota
	TabView
	Custom
)

// Implementations lists the variants in picker order
var Implementations = []Implementation{ScrollView, TabView, Custom}

func (i Implementation) String() string {
	switch i {
	case ScrollView:
		return "ScrollView"
	case TabView:
		return "TabView"
	case Custom:
		return "Custom"
	default:
		return fmt.Sprintf("Implementation(%d)", int(i))
	}
}

// Key returns the short name used in config files and flags
func (i Implementation) Key() string {
	switch i {
	case TabView:
		return "tab"
	case Custom:
		return "custom"
	default:
		return "scroll"
	}
}

// ParseImplementation accepts either the short key or the display name
func ParseImplementation(s string) (Implementation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scroll", "scrollview":
		return ScrollView, nil
	case "tab", "tabview", "paging":
		return TabView, nil
	case "custom", "swipe":
		return Custom, nil
	}
	return ScrollView, fmt.Errorf("unknown implementation %q", s)
}

// barMaxPoints is the tallest a bar gets, in layout points
const barMaxPoints = 40.0

// Bar is one element of the scroll carousel
type Bar struct {
	Index int
}

// Points returns the bar height in layout points, (sin(i/4)+1)*20
func (b Bar) Points() float64 {
	return (math.Sin(float64(b.Index)/4) + 1) * barMaxPoints / 2
}

// Height scales the bar to maxRows terminal rows, keeping fractions for
// sub-cell rendering
func (b Bar) Height(maxRows int) float64 {
	return b.Points() / barMaxPoints * float64(maxRows)
}

// Color is the bar fill: hue 1.0, saturation 0.5, brightness 0.002*index
func (b Bar) Color() colorful.Color {
	v := math.Min(0.002*float64(b.Index), 1)
	return colorful.Hsv(0, 0.5, v)
}

var pageColors = []string{"#FF3B30", "#007AFF", "#34C759"}

// Page is one full-width page of the paging and custom carousels
type Page struct {
	Index int
}

// Label is the overlay text shown on custom pages
func (p Page) Label() string {
	return fmt.Sprintf("Page %d", p.Index+1)
}

// Color cycles red, blue, green
func (p Page) Color() string {
	return pageColors[p.Index%len(pageColors)]
}
