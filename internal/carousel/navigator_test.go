package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPages(t *testing.T) State {
	t.Helper()
	s, err := NewState(3, 300)
	require.NoError(t, err)
	return s
}

func TestNewState(t *testing.T) {
	s, err := NewState(500, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, Idle, s.Phase)
	assert.Equal(t, 499, s.LastIndex())

	_, err = NewState(0, 1)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDragLifecycleCommitsOnce(t *testing.T) {
	n := NewNavigator(DragEndIndex)
	s := newPages(t)

	s, c := n.Reduce(s, DragStart{})
	assert.Nil(t, c)
	assert.Equal(t, Dragging, s.Phase)

	for _, tr := range []float64{-20, -140, -310} {
		s, c = n.Reduce(s, DragMove{Translation: tr})
		assert.Nil(t, c)
	}
	assert.Equal(t, -310.0, s.DragOffset, "only the latest translation is kept")
	assert.Equal(t, 0, s.Index, "index is not committed while dragging")

	s, c = n.Reduce(s, DragEnd{Translation: -310})
	require.NotNil(t, c)
	assert.Equal(t, Commit{From: 0, To: 1, Cause: CauseDrag}, *c)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, Idle, s.Phase)
	assert.Zero(t, s.DragOffset)

	s, c = n.Reduce(s, DragEnd{Translation: -900})
	assert.Nil(t, c, "a second end without a start must not commit")
	assert.Equal(t, 1, s.Index)
}

func TestDragEndWithoutMovementStillCommits(t *testing.T) {
	n := NewNavigator(DragEndIndex)
	s := newPages(t)
	s, _ = n.Reduce(s, DragStart{})
	_, c := n.Reduce(s, DragEnd{})
	require.NotNil(t, c)
	assert.False(t, c.Changed())
}

func TestDragCancelKeepsIndex(t *testing.T) {
	n := NewNavigator(DragEndIndex)
	s := newPages(t)
	s.Index = 2

	s, _ = n.Reduce(s, DragStart{})
	s, _ = n.Reduce(s, DragMove{Translation: 800})
	s, c := n.Reduce(s, DragCancel{})

	assert.Nil(t, c)
	assert.Equal(t, 2, s.Index)
	assert.Equal(t, Idle, s.Phase)
	assert.Zero(t, s.DragOffset)
}

func TestDragMoveIgnoredWhenIdle(t *testing.T) {
	n := NewNavigator(nil)
	s := newPages(t)
	s, c := n.Reduce(s, DragMove{Translation: -50})
	assert.Nil(t, c)
	assert.Zero(t, s.DragOffset)
}

func TestDragStartWhileDraggingKeepsOffset(t *testing.T) {
	n := NewNavigator(nil)
	s := newPages(t)
	s, _ = n.Reduce(s, DragStart{})
	s, _ = n.Reduce(s, DragMove{Translation: -50})
	s, _ = n.Reduce(s, DragStart{})
	assert.Equal(t, -50.0, s.DragOffset)
}

func TestDragEndWithZeroWidthCancels(t *testing.T) {
	n := NewNavigator(DragEndIndex)
	s, err := NewState(3, 0)
	require.NoError(t, err)
	s.Index = 1

	s, _ = n.Reduce(s, DragStart{})
	s, c := n.Reduce(s, DragEnd{Translation: -600})
	assert.Nil(t, c)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, Idle, s.Phase)
}

func TestSliderChange(t *testing.T) {
	n := NewNavigator(NearestIndex)
	s, err := NewState(500, 1)
	require.NoError(t, err)

	s, c := n.Reduce(s, SliderChange{Progress: 0.5})
	require.NotNil(t, c)
	assert.Equal(t, 249, s.Index)
	assert.Equal(t, CauseSlider, c.Cause)

	s, _ = n.Reduce(s, SliderChange{Progress: 1.7})
	assert.Equal(t, 499, s.Index)
	assert.Equal(t, 1.0, s.Progress())

	s, _ = n.Reduce(s, SliderChange{Progress: -3})
	assert.Equal(t, 0, s.Index)
}

func TestSliderIgnoredWhileDragging(t *testing.T) {
	n := NewNavigator(NearestIndex)
	s, err := NewState(500, 1)
	require.NoError(t, err)

	s, _ = n.Reduce(s, DragStart{})
	s, c := n.Reduce(s, SliderChange{Progress: 0.5})
	assert.Nil(t, c)
	assert.Equal(t, 0, s.Index)
}

func TestStepAndJumpClamp(t *testing.T) {
	n := NewNavigator(nil)
	s := newPages(t)

	s, c := n.Reduce(s, Step{Delta: -1})
	require.NotNil(t, c)
	assert.False(t, c.Changed())
	assert.Equal(t, 0, s.Index)

	s, _ = n.Reduce(s, Step{Delta: 5})
	assert.Equal(t, 2, s.Index)

	s, c = n.Reduce(s, JumpTo{Index: 0})
	assert.Equal(t, Commit{From: 2, To: 0, Cause: CauseJump}, *c)
	assert.Equal(t, 0, s.Index)
}

func TestResize(t *testing.T) {
	n := NewNavigator(nil)
	s := newPages(t)
	s, _ = n.Reduce(s, DragStart{})
	s, c := n.Reduce(s, Resize{ItemWidth: 120})
	assert.Nil(t, c)
	assert.Equal(t, 120.0, s.ItemWidth)
	assert.Equal(t, Dragging, s.Phase)
}

func TestPositionFollowsDrag(t *testing.T) {
	s, err := NewState(10, 10)
	require.NoError(t, err)
	s.Index = 2
	s.Phase = Dragging
	s.DragOffset = -5
	assert.InDelta(t, 2.5, s.Position(), 1e-9)

	s.ItemWidth = 0
	assert.Equal(t, 2.0, s.Position())
}

func TestProgressSingleItem(t *testing.T) {
	s, err := NewState(1, 10)
	require.NoError(t, err)
	assert.Zero(t, s.Progress())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
