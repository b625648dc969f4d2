// Package carousels holds the three interactive carousel variants. Each one
// keeps a carousel.State, feeds input through a carousel.Navigator and draws
// itself with the views package.
package carousels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"swipedemo/internal/carousel"
	"swipedemo/internal/domain"
	"swipedemo/internal/logging"
	"swipedemo/internal/ui/anim"
	"swipedemo/internal/ui/views"
)

var log = logging.NewLogger("carousel")

// Carousel is one switchable implementation
type Carousel interface {
	Implementation() domain.Implementation
	// Resize sets the body size in cells
	Resize(width, rows int)
	// Update handles keys, animation frames and mouse events whose
	// coordinates are relative to the body
	Update(msg tea.Msg) tea.Cmd
	View() string
	State() carousel.State
	Badge() string
}

// Publisher receives domain events; it may be nil
type Publisher func(domain.DomainEvent)

// Options are shared by all carousels
type Options struct {
	Animation anim.Options
	Publish   Publisher
	Renderer  *views.Renderer
	Keys      KeyMap
	// DragGain scales pointer travel for the page carousels, where a page is
	// as wide as the terminal and a flip would otherwise need a full-width drag
	DragGain float64
}

// base implements the gesture and key plumbing common to all variants
type base struct {
	impl     domain.Implementation
	nav      *carousel.Navigator
	state    carousel.State
	tween    *anim.Tween
	publish  Publisher
	renderer *views.Renderer
	keys     KeyMap

	width    int
	rows     int
	pageStep int
	gain     float64

	dragStartX int
}

func newBase(impl domain.Implementation, snap carousel.SnapFunc, count int, opts Options) (base, error) {
	state, err := carousel.NewState(count, 0)
	if err != nil {
		return base{}, fmt.Errorf("%s: %w", impl, err)
	}
	r := opts.Renderer
	if r == nil {
		r = views.NewRenderer()
	}
	return base{
		impl:     impl,
		nav:      carousel.NewNavigator(snap),
		state:    state,
		tween:    anim.New(0, opts.Animation),
		publish:  opts.Publish,
		renderer: r,
		keys:     opts.Keys,
		pageStep: 1,
		gain:     1,
	}, nil
}

func (b *base) Implementation() domain.Implementation { return b.impl }

func (b *base) State() carousel.State { return b.state }

func (b *base) Badge() string {
	badge := fmt.Sprintf("%s · %d/%d", b.impl, b.state.Index+1, b.state.ItemCount)
	if b.state.Phase == carousel.Dragging {
		badge += " · dragging"
	}
	return badge
}

// position is the fractional index to draw
func (b *base) position() float64 {
	if b.state.Phase == carousel.Dragging {
		return b.state.Position()
	}
	return b.tween.Position()
}

// dispatch reduces e and turns the outcome into animation and events
func (b *base) dispatch(e carousel.Event) tea.Cmd {
	if end, ok := e.(carousel.DragEnd); ok && b.state.Phase == carousel.Dragging {
		b.state, _ = b.nav.Reduce(b.state, carousel.DragMove(end))
	}

	before := b.state
	from := b.position()
	next, commit := b.nav.Reduce(b.state, e)
	b.state = next

	switch {
	case before.Phase == carousel.Idle && next.Phase == carousel.Dragging:
		b.tween.Set(float64(next.Index))
		log.WithField("impl", b.impl).Debug("drag started")
		return nil

	case before.Phase == carousel.Dragging && next.Phase == carousel.Idle && commit == nil:
		b.emit(domain.GestureCancelledEvent{Implementation: b.impl, Index: next.Index})
		b.tween.Set(from)
		return b.tween.AnimateTo(float64(next.Index))
	}

	if commit == nil {
		return nil
	}

	log.WithFields(logrus.Fields{
		"impl":  b.impl,
		"from":  commit.From,
		"to":    commit.To,
		"cause": commit.Cause,
	}).Info("index committed")
	b.emit(domain.IndexCommittedEvent{
		Implementation: b.impl,
		From:           commit.From,
		To:             commit.To,
		Cause:          string(commit.Cause),
	})

	switch commit.Cause {
	case carousel.CauseSlider:
		b.tween.Set(float64(commit.To))
		return nil
	case carousel.CauseDrag:
		b.tween.Set(from)
	}
	return b.tween.AnimateTo(float64(commit.To))
}

func (b *base) emit(e domain.DomainEvent) {
	if b.publish != nil {
		b.publish(e)
	}
}

// handleKey maps navigation keys to navigator events
func (b *base) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keys.Prev):
		return b.dispatch(carousel.Step{Delta: -1})
	case key.Matches(msg, b.keys.Next):
		return b.dispatch(carousel.Step{Delta: 1})
	case key.Matches(msg, b.keys.PageBack):
		return b.dispatch(carousel.Step{Delta: -b.pageStep})
	case key.Matches(msg, b.keys.PageFwd):
		return b.dispatch(carousel.Step{Delta: b.pageStep})
	case key.Matches(msg, b.keys.First):
		return b.dispatch(carousel.JumpTo{Index: 0})
	case key.Matches(msg, b.keys.Last):
		return b.dispatch(carousel.JumpTo{Index: b.state.LastIndex()})
	case key.Matches(msg, b.keys.Cancel):
		return b.dispatch(carousel.DragCancel{})
	}
	return nil
}

// handleDrag turns press/motion/release into a gesture. Presses only start a
// gesture when inArea is true; motion and release are tracked anywhere.
func (b *base) handleDrag(msg tea.MouseMsg, inArea bool) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if !inArea {
				return nil
			}
			b.dragStartX = msg.X
			return b.dispatch(carousel.DragStart{})
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if inArea {
				return b.dispatch(carousel.Step{Delta: -1})
			}
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if inArea {
				return b.dispatch(carousel.Step{Delta: 1})
			}
		}
	case tea.MouseActionMotion:
		if b.state.Phase == carousel.Dragging {
			return b.dispatch(carousel.DragMove{Translation: b.translation(msg.X)})
		}
	case tea.MouseActionRelease:
		if b.state.Phase == carousel.Dragging {
			return b.dispatch(carousel.DragEnd{Translation: b.translation(msg.X)})
		}
	}
	return nil
}

func (b *base) translation(x int) float64 {
	return float64(x-b.dragStartX) * b.gain
}

// updateCommon handles the messages every carousel treats the same way
func (b *base) updateCommon(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case anim.FrameMsg:
		return b.tween.Update(msg), true
	case tea.KeyMsg:
		return b.handleKey(msg), true
	}
	return nil, false
}

// New builds the carousel for impl
func New(impl domain.Implementation, bars, pages int, opts Options) (Carousel, error) {
	switch impl {
	case domain.TabView:
		p, err := NewPaging(pages, opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	case domain.Custom:
		s, err := NewSwipe(pages, opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		s, err := NewScroll(bars, opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
