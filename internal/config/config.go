package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"swipedemo/internal/domain"
	"swipedemo/internal/eventbus"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Version   int               `toml:"version"`
	Carousel  CarouselSettings  `toml:"carousel"`
	Animation AnimationSettings `toml:"animation"`
	Log       LogSettings       `toml:"log"`
}

// CarouselSettings sizes the three carousels
type CarouselSettings struct {
	Bars     int     `toml:"bars"`      // items in the scroll carousel
	Pages    int     `toml:"pages"`     // pages in the paging and custom carousels
	Height   int     `toml:"height"`    // body height in rows
	Start    string  `toml:"start"`     // scroll, tab or custom
	DragGain float64 `toml:"drag_gain"` // pointer travel multiplier on the page carousels
}

// AnimationSettings tunes the spring used when the index changes
type AnimationSettings struct {
	Enabled   bool    `toml:"enabled"`
	FPS       int     `toml:"fps"`
	Frequency float64 `toml:"frequency"`
	Damping   float64 `toml:"damping"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	JSON  bool   `toml:"json"`
}

// StartImplementation returns the parsed start implementation
func (c *Config) StartImplementation() domain.Implementation {
	impl, err := domain.ParseImplementation(c.Carousel.Start)
	if err != nil {
		return domain.ScrollView
	}
	return impl
}

// Validate rejects configurations the carousels cannot render
func (c *Config) Validate() error {
	switch {
	case c.Carousel.Bars < 1:
		return fmt.Errorf("%w: carousel.bars must be at least 1, got %d", ErrInvalid, c.Carousel.Bars)
	case c.Carousel.Pages < 1:
		return fmt.Errorf("%w: carousel.pages must be at least 1, got %d", ErrInvalid, c.Carousel.Pages)
	case c.Carousel.Height < 4:
		return fmt.Errorf("%w: carousel.height must be at least 4, got %d", ErrInvalid, c.Carousel.Height)
	case c.Carousel.DragGain <= 0:
		return fmt.Errorf("%w: carousel.drag_gain must be positive", ErrInvalid)
	case c.Animation.FPS < 1:
		return fmt.Errorf("%w: animation.fps must be at least 1, got %d", ErrInvalid, c.Animation.FPS)
	case c.Animation.Frequency <= 0:
		return fmt.Errorf("%w: animation.frequency must be positive", ErrInvalid)
	case c.Animation.Damping < 0:
		return fmt.Errorf("%w: animation.damping must not be negative", ErrInvalid)
	}
	if _, err := domain.ParseImplementation(c.Carousel.Start); err != nil {
		return fmt.Errorf("%w: carousel.start: %v", ErrInvalid, err)
	}
	return nil
}

// Marshal encodes the configuration as TOML
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path, or for the default
// location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns $XDG_CONFIG_HOME/swipedemo/config.toml or a fallback
// under the home directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "swipedemo", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the configuration, writing the defaults on first run
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, err
		}
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path: cs.filePath,
			Bars: cfg.Carousel.Bars,
		})
	}
	return cfg, nil
}

// Save writes the configuration to the service path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := config.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	logFile := ""
	if cacheDir, err := os.UserCacheDir(); err == nil {
		logFile = filepath.Join(cacheDir, "swipedemo", "swipedemo.log")
	}

	return &Config{
		Version: 1,
		Carousel: CarouselSettings{
			Bars:     500,
			Pages:    3,
			Height:   10,
			Start:    domain.ScrollView.Key(),
			DragGain: 2.0,
		},
		Animation: AnimationSettings{
			Enabled:   true,
			FPS:       60,
			Frequency: 6.0,
			Damping:   1.0,
		},
		Log: LogSettings{
			Level: "info",
			File:  logFile,
		},
	}
}
