package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swipedemo/internal/carousel"
	"swipedemo/internal/config"
	"swipedemo/internal/domain"
	"swipedemo/internal/eventbus"
	"swipedemo/internal/logging"
	"swipedemo/internal/ui/anim"
	"swipedemo/internal/ui/carousels"
	"swipedemo/internal/ui/views"
)

var log = logging.NewLogger("ui")

const appTitle = "swipedemo"

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	keys     KeyMap
	help     help.Model
	renderer *views.Renderer
	helpOps  *HelpOps

	carousel carousels.Carousel
	impl     domain.Implementation

	width  int
	height int
	layout views.Layout
	status string
	ready  bool

	inPagerMode bool // tracks if we're currently in pager mode

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := &Model{
		bus:      bus,
		config:   cfg,
		keys:     DefaultKeyMap,
		help:     help.New(),
		renderer: views.NewRenderer(),
		helpOps:  NewHelpOps(nil),
		impl:     cfg.StartImplementation(),
		width:    80,
		height:   24,
		ready:    os.Getenv("SWIPEDEMO_E2E_TEST") == "1",
	}
	m.layout = views.NewLayout(m.width, m.height, cfg.Carousel.Height)
	m.help.Width = m.width

	c, err := m.newCarousel(m.impl)
	if err != nil {
		return nil, err
	}
	m.carousel = c
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Implementation returns the active carousel variant
func (m *Model) Implementation() domain.Implementation { return m.impl }

// Carousel returns the active carousel
func (m *Model) Carousel() carousels.Carousel { return m.carousel }

// Layout returns the current screen layout
func (m *Model) Layout() views.Layout { return m.layout }

// Status returns the status line text
func (m *Model) Status() string { return m.status }

func (m *Model) newCarousel(impl domain.Implementation) (carousels.Carousel, error) {
	c, err := carousels.New(impl, m.config.Carousel.Bars, m.config.Carousel.Pages, carousels.Options{
		Animation: anim.Options{
			Enabled:   m.config.Animation.Enabled,
			FPS:       m.config.Animation.FPS,
			Frequency: m.config.Animation.Frequency,
			Damping:   m.config.Animation.Damping,
		},
		Publish:  m.publish,
		Renderer: m.renderer,
		Keys:     m.keys.KeyMap,
		DragGain: m.config.Carousel.DragGain,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s carousel: %w", impl, err)
	}
	c.Resize(m.layout.Width, m.layout.BodyHeight)
	return c, nil
}

func (m *Model) publish(e domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// switchTo replaces the active carousel; the new one starts from index 0
func (m *Model) switchTo(impl domain.Implementation) tea.Cmd {
	if impl == m.impl {
		return nil
	}
	c, err := m.newCarousel(impl)
	if err != nil {
		m.reportError(fmt.Sprintf("switch to %s failed", impl), err)
		return nil
	}
	from := m.impl
	m.impl = impl
	m.carousel = c
	m.status = fmt.Sprintf("switched to %s", impl)
	log.WithField("from", from).WithField("to", impl).Info("implementation switched")
	m.publish(domain.ImplementationSwitchedEvent{From: from, To: impl})
	return nil
}

// reportError shows err on the status line and publishes it for the log
func (m *Model) reportError(message string, err error) {
	m.status = fmt.Sprintf("%s: %v", message, err)
	m.publish(domain.ErrorEvent{Message: message, Err: err})
}

func (m *Model) cycle(delta int) tea.Cmd {
	n := len(domain.Implementations)
	next := (int(m.impl) + delta + n) % n
	return m.switchTo(domain.Implementations[next])
}

func (m *Model) labels() []string {
	labels := make([]string, len(domain.Implementations))
	for i, impl := range domain.Implementations {
		labels[i] = impl.String()
	}
	return labels
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout = views.NewLayout(m.width, m.height, m.config.Carousel.Height)
		m.carousel.Resize(m.layout.Width, m.layout.BodyHeight)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case anim.FrameMsg:
		return m, m.carousel.Update(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.reportError("help pager failed", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m.fetchHelpPager(NewHelpRenderer(m.keys).RenderHelpContent())
	case key.Matches(msg, m.keys.NextImpl):
		return m.cycle(1)
	case key.Matches(msg, m.keys.PrevImpl):
		return m.cycle(-1)
	case key.Matches(msg, m.keys.Scroll):
		return m.switchTo(domain.ScrollView)
	case key.Matches(msg, m.keys.Tab):
		return m.switchTo(domain.TabView)
	case key.Matches(msg, m.keys.Custom):
		return m.switchTo(domain.Custom)
	}
	return m.carousel.Update(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Y == m.layout.PickerRow &&
		msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		m.carousel.State().Phase == carousel.Idle {
		segs := views.PickerLayout(m.labels(), m.layout.Width)
		if i := views.SegmentAt(segs, msg.X); i >= 0 {
			return m.switchTo(domain.Implementations[i])
		}
		return nil
	}

	// Carousels work in body coordinates
	msg.Y -= m.layout.BodyTop
	return m.carousel.Update(msg)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case domain.IndexCommittedEvent:
		if e.Implementation != m.impl {
			return
		}
		m.status = fmt.Sprintf("committed %d → %d (%s)", e.From, e.To, e.Cause)
	case domain.GestureCancelledEvent:
		if e.Implementation != m.impl {
			return
		}
		m.status = fmt.Sprintf("drag cancelled, index %d kept", e.Index)
	case domain.ImplementationSwitchedEvent:
		m.status = fmt.Sprintf("switched to %s", e.To)
	case domain.ErrorEvent:
		m.status = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	state := m.carousel.State()
	return m.renderer.Render(views.ViewState{
		Layout:   m.layout,
		Title:    appTitle,
		Badge:    m.carousel.Badge(),
		Dragging: state.Phase == carousel.Dragging,
		Body:     m.carousel.View(),
		Labels:   m.labels(),
		Selected: int(m.impl),
		Status:   m.status,
		Help:     m.help.View(m.keys),
		Ready:    m.ready,
	})
}
