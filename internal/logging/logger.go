// Package logging configures the process-wide logrus logger. The terminal is
// owned by the TUI, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured level when set.
const LevelEnv = "SWIPEDEMO_LOG_LEVEL"

var (
	base      = newBase()
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return l
}

// Options controls Setup.
type Options struct {
	Level   string // debug, info, warn, error
	File    string // empty disables file output
	JSON    bool
	Verbose bool // forces debug level
}

// NewLogger returns the logger for a component. Entries share the base
// logger, so they may be created before Setup runs.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, ok := loggers[component]; ok {
		return logger
	}
	logger := base.WithField("component", component)
	loggers[component] = logger
	return logger
}

// Setup applies opts to the base logger. The returned closer releases the log
// file and must be called on exit.
func Setup(opts Options) (io.Closer, error) {
	levelStr := opts.Level
	if env := os.Getenv(LevelEnv); env != "" {
		levelStr = env
	}
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	if opts.Verbose {
		level = logrus.DebugLevel
	}
	base.SetLevel(level)

	if opts.JSON {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if opts.File == "" {
		base.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	base.SetOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Base exposes the shared logger, mainly for tests.
func Base() *logrus.Logger {
	return base
}
