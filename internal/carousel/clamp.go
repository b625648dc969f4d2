package carousel

import (
	"errors"
	"math"
)

var (
	// ErrSingleItem is returned when a progress value is requested for a
	// carousel whose index range has no extent.
	ErrSingleItem = errors.New("carousel: progress undefined for fewer than two items")

	// ErrEmpty is returned when a carousel is created without items.
	ErrEmpty = errors.New("carousel: item count must be positive")
)

// Clamp constrains value to [lower, upper].
func Clamp(value, lower, upper int) int {
	return min(max(value, lower), upper)
}

// SnapFunc maps the end of a drag gesture to a new index.
type SnapFunc func(startIndex int, translation, itemWidth float64, itemCount int) int

// DragEndIndex computes the page committed when a drag ends.
//
// The raw value is converted with int(), which truncates toward zero, so a
// drag shorter than a full page never flips forward. Do not change this to
// rounding without also changing the page-flip threshold users are used to.
func DragEndIndex(startIndex int, translation, pageWidth float64, itemCount int) int {
	if pageWidth <= 0 {
		return Clamp(startIndex, 0, itemCount-1)
	}
	raw := int((-float64(startIndex)*pageWidth - translation) / pageWidth)
	return Clamp(raw, 0, itemCount-1)
}

// NearestIndex snaps to the item whose slot is closest to where the drag left
// the strip.
func NearestIndex(startIndex int, translation, itemWidth float64, itemCount int) int {
	if itemWidth <= 0 {
		return Clamp(startIndex, 0, itemCount-1)
	}
	raw := math.Round(float64(startIndex) - translation/itemWidth)
	return Clamp(int(raw), 0, itemCount-1)
}

// AdjacentIndex behaves like NearestIndex but never moves more than one page.
func AdjacentIndex(startIndex int, translation, itemWidth float64, itemCount int) int {
	n := NearestIndex(startIndex, translation, itemWidth, itemCount)
	return Clamp(Clamp(n, startIndex-1, startIndex+1), 0, itemCount-1)
}

// ProgressToIndex converts a slider position back to an index. The product is
// truncated toward zero and not clamped; progress is expected in [0, 1].
func ProgressToIndex(progress float64, itemCount int) int {
	return int(progress * float64(itemCount-1))
}

// IndexToProgress returns index normalized over the item range.
func IndexToProgress(index, itemCount int) (float64, error) {
	if itemCount <= 1 {
		return 0, ErrSingleItem
	}
	return float64(index) / float64(itemCount-1), nil
}
