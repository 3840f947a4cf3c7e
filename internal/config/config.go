package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/asciifire/internal/fire"
	"github.com/san-kum/asciifire/internal/viz"
)

const (
	DefaultInterval = 30 * time.Millisecond
	DefaultTheme    = "ember"
	DefaultRenderer = RendererPlain
)

const (
	RendererPlain  = "plain"
	RendererTUI    = "tui"
	RendererScreen = "screen"
)

var Renderers = []string{RendererPlain, RendererTUI, RendererScreen}

type Config struct {
	Interval time.Duration `yaml:"interval"`
	Seed     int64         `yaml:"seed"`
	Palette  string        `yaml:"palette,omitempty"`
	Theme    string        `yaml:"theme"`
	Renderer string        `yaml:"renderer"`
}

func DefaultConfig() *Config {
	return &Config{
		Interval: DefaultInterval,
		Theme:    DefaultTheme,
		Renderer: DefaultRenderer,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base. Keys missing from the file
// keep their base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if !slices.Contains(Renderers, c.Renderer) {
		return fmt.Errorf("unknown renderer %q (available: %v)", c.Renderer, Renderers)
	}
	if themes := viz.ThemeNames(); !slices.Contains(themes, c.Theme) {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, themes)
	}
	if c.Palette != "" {
		if _, err := fire.NewPalette(c.Palette); err != nil {
			return err
		}
	}
	return nil
}

// GetPalette returns the configured palette, or the default one when unset.
func (c *Config) GetPalette() (fire.Palette, error) {
	if c.Palette == "" {
		return fire.DefaultPalette(), nil
	}
	return fire.NewPalette(c.Palette)
}

// GetOptions translates the config into simulator options.
func (c *Config) GetOptions() ([]fire.Option, error) {
	p, err := c.GetPalette()
	if err != nil {
		return nil, err
	}
	return []fire.Option{fire.WithPalette(p), fire.WithSeed(c.Seed)}, nil
}
