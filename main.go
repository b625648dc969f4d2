package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"swipedemo/internal/config"
	"swipedemo/internal/domain"
	"swipedemo/internal/eventbus"
	"swipedemo/internal/logging"
	"swipedemo/internal/ui"
)

var log = logging.NewLogger("main")

var errNotTerminal = errors.New("stdout is not a terminal")

// options holds the command line flags
type options struct {
	ConfigFile string
	Impl       string
	Bars       int
	Verbose    bool
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "swipedemo",
		Short: "Swipeable carousel demo for the terminal",
		Long: `swipedemo shows three implementations of a horizontally swipeable
carousel: a scroll strip of 500 bars with a slider, a paging view and a
hand-rolled swipe pager. Drag with the mouse or use the arrow keys.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "Path to config.toml")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVarP(&opts.Impl, "impl", "i", "", "Start implementation: scroll, tab or custom")
	cmd.Flags().IntVar(&opts.Bars, "bars", 0, "Number of bars in the scroll carousel")

	cmd.AddCommand(newConfigCommand(opts))
	return cmd
}

func newConfigCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigService(opts.ConfigFile).Load()
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// applyFlags overrides the loaded configuration with explicit flags
func applyFlags(cfg *config.Config, opts *options) error {
	if opts.Impl != "" {
		impl, err := domain.ParseImplementation(opts.Impl)
		if err != nil {
			return err
		}
		cfg.Carousel.Start = impl.Key()
	}
	if opts.Bars != 0 {
		cfg.Carousel.Bars = opts.Bars
	}
	return cfg.Validate()
}

func run(ctx context.Context, opts *options) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	subscribeLogging(bus)

	// Log with the defaults until the config file is read
	closer, err := setupLogging(config.DefaultConfig(), opts.Verbose)
	if err != nil {
		return err
	}
	// Handlers may still log while the bus drains, so the log file closes last
	defer func() {
		bus.Close()
		closer.Close()
	}()

	configSvc := config.NewConfigServiceWithBus(opts.ConfigFile, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, opts); err != nil {
		return err
	}

	next, err := setupLogging(cfg, opts.Verbose)
	if err != nil {
		return err
	}
	closer.Close()
	closer = next
	log.WithField("config", configSvc.Path()).Info("starting")

	uiModel, err := ui.NewModel(bus, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	subscribe(bus, p)

	log.Info("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.WithError(err).Error("error running program")
		return fmt.Errorf("run program: %w", err)
	}
	log.Info("UI exited normally")
	return nil
}

func setupLogging(cfg *config.Config, verbose bool) (io.Closer, error) {
	return logging.Setup(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		JSON:    cfg.Log.JSON,
		Verbose: verbose,
	})
}

// subscribeLogging logs the events that have no UI counterpart. It runs
// before the config is loaded so the load itself is recorded.
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.WithField("path", event.Path).WithField("bars", event.Bars).Info("config loaded")
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.WithField("path", event.Path).Info("config saved")
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.WithError(event.Err).Error(event.Message)
		}
	})
}

// subscribe forwards the events the status line shows back to the program
func subscribe(bus eventbus.EventBus, p *tea.Program) {
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}

	bus.Subscribe(eventbus.EventIndexCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.IndexCommittedEvent); ok {
			log.WithField("impl", event.Implementation).
				WithField("from", event.From).
				WithField("to", event.To).
				Debug("commit event")
		}
		forward(e)
	})
	bus.Subscribe(eventbus.EventGestureCancelled, forward)
	bus.Subscribe(eventbus.EventImplementationSwitched, forward)
	bus.Subscribe(eventbus.EventError, forward)
}
