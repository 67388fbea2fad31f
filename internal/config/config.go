package config

import (
	"errors"
	"fmt"
	"math"

	"LocalSketch/internal/export"
	"LocalSketch/internal/shape"

	"github.com/BurntSushi/toml"
)

var ErrInvalid = errors.New("invalid configuration")

// EnvPath names the environment variable holding the config file path.
const EnvPath = "LOCALSKETCH_CONFIG"

type Canvas struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
}

type Defaults struct {
	Tool   string  `toml:"tool"`
	Stroke string  `toml:"stroke"`
	Fill   string  `toml:"fill"`
	Width  float64 `toml:"width"`
}

type Export struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

type Config struct {
	Canvas   Canvas   `toml:"canvas"`
	Defaults Defaults `toml:"defaults"`
	Export   Export   `toml:"export"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas:   Canvas{Width: 800, Height: 600, Background: "#ffffff"},
		Defaults: Defaults{Tool: "freehand", Stroke: "#000000", Fill: shape.None, Width: 2},
		Export:   Export{Format: "svg"},
	}
}

// Load overlays the TOML file at path on Default. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text the same way Load decodes a file.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for name, v := range map[string]float64{"canvas.width": c.Canvas.Width, "canvas.height": c.Canvas.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, name, v)
		}
	}
	if c.Canvas.Background != "" && c.Canvas.Background != shape.None {
		if err := (shape.Style{Stroke: c.Canvas.Background, Fill: shape.None, Width: 1}).Validate(); err != nil {
			return fmt.Errorf("%w: canvas.background: %v", ErrInvalid, err)
		}
	}
	if _, err := c.Tool(); err != nil {
		return fmt.Errorf("%w: defaults.tool: %v", ErrInvalid, err)
	}
	if err := c.Style().Validate(); err != nil {
		return fmt.Errorf("%w: defaults: %v", ErrInvalid, err)
	}
	if _, err := c.Format(); err != nil {
		return fmt.Errorf("%w: export.format: %v", ErrInvalid, err)
	}
	return nil
}

func (c Config) Tool() (shape.Kind, error) {
	return shape.ParseKind(c.Defaults.Tool)
}

func (c Config) Style() shape.Style {
	return shape.Style{Stroke: c.Defaults.Stroke, Fill: c.Defaults.Fill, Width: c.Defaults.Width}
}

func (c Config) Format() (export.Format, error) {
	return export.ParseFormat(c.Export.Format)
}

func (c Config) ExportCanvas() export.Canvas {
	return export.Canvas{Width: c.Canvas.Width, Height: c.Canvas.Height, Background: c.Canvas.Background}
}
