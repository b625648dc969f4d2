package carousel

import "fmt"

// Phase is the gesture state of a carousel.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Cause records what produced a commit.
type Cause string

const (
	CauseDrag   Cause = "drag"
	CauseSlider Cause = "slider"
	CauseStep   Cause = "step"
	CauseJump   Cause = "jump"
)

// State is the complete navigation state of one carousel.
type State struct {
	Index      int
	ItemCount  int
	ItemWidth  float64
	DragOffset float64
	Phase      Phase
}

// NewState returns an idle state positioned on the first item.
func NewState(itemCount int, itemWidth float64) (State, error) {
	if itemCount < 1 {
		return State{}, fmt.Errorf("%w: got %d", ErrEmpty, itemCount)
	}
	return State{ItemCount: itemCount, ItemWidth: itemWidth}, nil
}

// Progress returns the committed index normalized to [0, 1]. A single item
// carousel reports 0.
func (s State) Progress() float64 {
	p, err := IndexToProgress(s.Index, s.ItemCount)
	if err != nil {
		return 0
	}
	return p
}

// Position is the fractional index currently under the viewport, including
// the uncommitted drag offset.
func (s State) Position() float64 {
	if s.ItemWidth <= 0 {
		return float64(s.Index)
	}
	return float64(s.Index) - s.DragOffset/s.ItemWidth
}

// LastIndex returns the highest valid index.
func (s State) LastIndex() int {
	return s.ItemCount - 1
}

// Commit describes a change of the committed index.
type Commit struct {
	From  int
	To    int
	Cause Cause
}

// Changed reports whether the commit moved the carousel.
func (c Commit) Changed() bool {
	return c.From != c.To
}

// Event is an input to Reduce.
type Event interface {
	event()
}

type (
	// DragStart begins a gesture.
	DragStart struct{}
	// DragMove carries the live translation of the pointer since DragStart.
	DragMove struct{ Translation float64 }
	// DragEnd finishes a gesture with its final translation.
	DragEnd struct{ Translation float64 }
	// DragCancel abandons a gesture without committing.
	DragCancel struct{}
	// SliderChange sets the index from a continuous slider value.
	SliderChange struct{ Progress float64 }
	// Step moves the index by Delta items.
	Step struct{ Delta int }
	// JumpTo moves the index to a fixed item.
	JumpTo struct{ Index int }
	// Resize updates the width of one item.
	Resize struct{ ItemWidth float64 }
)

func (DragStart) event()    {}
func (DragMove) event()     {}
func (DragEnd) event()      {}
func (DragCancel) event()   {}
func (SliderChange) event() {}
func (Step) event()         {}
func (JumpTo) event()       {}
func (Resize) event()       {}

// Navigator reduces input events into carousel state using a snap policy.
type Navigator struct {
	snap SnapFunc
}

// NewNavigator creates a navigator. A nil snap uses DragEndIndex.
func NewNavigator(snap SnapFunc) *Navigator {
	if snap == nil {
		snap = DragEndIndex
	}
	return &Navigator{snap: snap}
}

// Reduce applies e to s. The returned commit is non-nil only when the
// committed index was (re)assigned; a completed drag always commits once.
func (n *Navigator) Reduce(s State, e Event) (State, *Commit) {
	switch e := e.(type) {
	case DragStart:
		if s.Phase == Idle {
			s.Phase = Dragging
			s.DragOffset = 0
		}
		return s, nil

	case DragMove:
		if s.Phase == Dragging {
			s.DragOffset = e.Translation
		}
		return s, nil

	case DragEnd:
		if s.Phase != Dragging {
			return s, nil
		}
		if s.ItemWidth <= 0 {
			return n.cancel(s), nil
		}
		from := s.Index
		s.Index = n.snap(from, e.Translation, s.ItemWidth, s.ItemCount)
		s.Phase = Idle
		s.DragOffset = 0
		return s, &Commit{From: from, To: s.Index, Cause: CauseDrag}

	case DragCancel:
		return n.cancel(s), nil

	case SliderChange:
		if s.Phase != Idle {
			return s, nil
		}
		p := min(max(e.Progress, 0), 1)
		return n.commit(s, ProgressToIndex(p, s.ItemCount), CauseSlider)

	case Step:
		if s.Phase != Idle {
			return s, nil
		}
		return n.commit(s, s.Index+e.Delta, CauseStep)

	case JumpTo:
		if s.Phase != Idle {
			return s, nil
		}
		return n.commit(s, e.Index, CauseJump)

	case Resize:
		s.ItemWidth = e.ItemWidth
		return s, nil
	}
	return s, nil
}

func (n *Navigator) cancel(s State) State {
	s.Phase = Idle
	s.DragOffset = 0
	return s
}

func (n *Navigator) commit(s State, index int, cause Cause) (State, *Commit) {
	from := s.Index
	s.Index = Clamp(index, 0, s.LastIndex())
	return s, &Commit{From: from, To: s.Index, Cause: cause}
}
