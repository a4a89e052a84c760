package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 800
	DefaultHeight     = 800
	DefaultTitle      = "kaleido"
	DefaultFPS        = 60
	DefaultBackground = "#000000"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Window      WindowConfig `yaml:"window"`
	FPS         int          `yaml:"fps"`
	Overlay     bool         `yaml:"overlay"`
	NoiseSeed   int64        `yaml:"noise_seed"`
	SparkleSeed int64        `yaml:"sparkle_seed"`
	Background  string       `yaml:"background"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		FPS:        DefaultFPS,
		Background: DefaultBackground,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver decodes the file on top of a copy of base, so keys missing from the
// file keep the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("%w: background %q", ErrInvalidConfig, c.Background)
	}
	return nil
}

// BackgroundColor falls back to black when Background does not parse.
func (c *Config) BackgroundColor() colorful.Color {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return colorful.Color{}
	}
	return col
}

// Clone returns a copy safe to modify.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
