// Package anim moves a rendered position toward a committed index with a
// critically damped spring, one frame per tea.Tick.
package anim

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.01

var lastID atomic.Int64

// FrameMsg advances the tween with the matching ID. Tag identifies the frame
// loop that scheduled it; frames from an interrupted loop are dropped.
type FrameMsg struct {
	ID  int64
	Tag int
}

// Options configure a Tween.
type Options struct {
	Enabled   bool
	FPS       int
	Frequency float64
	Damping   float64
}

// Tween animates a single scalar.
type Tween struct {
	id       int64
	tag      int
	enabled  bool
	interval time.Duration
	spring   harmonica.Spring

	pos     float64
	vel     float64
	target  float64
	running bool
}

// New returns a tween resting at pos.
func New(pos float64, opts Options) *Tween {
	fps := max(opts.FPS, 1)
	return &Tween{
		id:       lastID.Add(1),
		enabled:  opts.Enabled,
		interval: time.Second / time.Duration(fps),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), opts.Frequency, opts.Damping),
		pos:      pos,
		target:   pos,
	}
}

// Position is the value to render.
func (t *Tween) Position() float64 { return t.pos }

// Target is the value the tween settles on.
func (t *Tween) Target() float64 { return t.target }

// Animating reports whether frames are still pending.
func (t *Tween) Animating() bool { return t.running }

// Set moves the tween immediately and stops any animation. A frame that is
// already scheduled becomes stale.
func (t *Tween) Set(pos float64) {
	t.pos, t.target, t.vel = pos, pos, 0
	t.running = false
	t.tag++
}

// AnimateTo starts moving toward target. The returned command schedules the
// next frame; it is nil when no new frame loop is needed.
func (t *Tween) AnimateTo(target float64) tea.Cmd {
	if !t.enabled {
		t.Set(target)
		return nil
	}
	t.target = target
	if t.running {
		return nil
	}
	if t.settled() {
		t.Set(target)
		return nil
	}
	t.running = true
	t.tag++
	return t.tick()
}

// Update handles a frame. Frames of other tweens are ignored.
func (t *Tween) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != t.id || frame.Tag != t.tag || !t.running {
		return nil
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	if t.settled() {
		t.Set(t.target)
		return nil
	}
	return t.tick()
}

func (t *Tween) settled() bool {
	return math.Abs(t.pos-t.target) < settleEpsilon && math.Abs(t.vel) < settleEpsilon
}

func (t *Tween) tick() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Tag: tag}
	})
}
