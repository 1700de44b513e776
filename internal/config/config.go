package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/grapher/internal/plot"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDim         = 50
	DefaultPrecision   = 1000
	DefaultOutput      = "a.png"
	DefaultFunction    = "circle"
	DefaultTickSpacing = plot.DefaultTickSpacing
	DefaultPanStep     = plot.DefaultPanStep
	DefaultBackground  = "#ffffff"
	DefaultForeground  = "#000000"
	DefaultDataDir     = ".grapher"
	DefaultImageScale  = 1
)

var (
	ErrInvalidDim       = errors.New("config: dim must be at least 1")
	ErrInvalidPrecision = errors.New("config: precision must be at least 1")
	ErrInvalidParam     = errors.New("config: param_min must be below param_max")
	ErrInvalidView      = errors.New("config: view zoom must be positive")
	ErrInvalidScale     = errors.New("config: image_scale must be at least 1")
)

type Config struct {
	Dim         int        `yaml:"dim"`
	Precision   int        `yaml:"precision"`
	Output      string     `yaml:"output"`
	Function    string     `yaml:"function"`
	TickSpacing int        `yaml:"tick_spacing"`
	PanStep     float64    `yaml:"pan_step"`
	ParamMin    *float64   `yaml:"param_min,omitempty"`
	ParamMax    *float64   `yaml:"param_max,omitempty"`
	Background  string     `yaml:"background"`
	Foreground  string     `yaml:"foreground"`
	DataDir     string     `yaml:"data_dir"`
	ImageScale  int        `yaml:"image_scale"`
	View        ViewConfig `yaml:"view"`
}

// ViewConfig is the viewport a session starts from.
type ViewConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Zoom    float64 `yaml:"zoom"`
	Axis    bool    `yaml:"axis"`
}

func DefaultConfig() *Config {
	return &Config{
		Dim:         DefaultDim,
		Precision:   DefaultPrecision,
		Output:      DefaultOutput,
		Function:    DefaultFunction,
		TickSpacing: DefaultTickSpacing,
		PanStep:     DefaultPanStep,
		Background:  DefaultBackground,
		Foreground:  DefaultForeground,
		DataDir:     DefaultDataDir,
		ImageScale:  DefaultImageScale,
		View:        ViewConfig{Zoom: 1.0},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate rejects settings that would break the grid or sampling
// invariants.
func (c *Config) Validate() error {
	if c.Dim < 1 {
		return ErrInvalidDim
	}
	if c.Precision < 1 {
		return ErrInvalidPrecision
	}
	if c.ImageScale < 1 {
		return ErrInvalidScale
	}
	if c.View.Zoom <= 0 {
		return ErrInvalidView
	}
	if (c.ParamMin == nil) != (c.ParamMax == nil) || (c.ParamMin != nil && *c.ParamMin >= *c.ParamMax) {
		return ErrInvalidParam
	}
	if _, err := plot.ParseRGB(c.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if _, err := plot.ParseRGB(c.Foreground); err != nil {
		return fmt.Errorf("config: foreground: %w", err)
	}
	return nil
}

// Param returns the fixed parameter range, or nil when none is set.
func (c *Config) Param() *plot.Window {
	if c.ParamMin == nil || c.ParamMax == nil {
		return nil
	}
	return &plot.Window{Min: *c.ParamMin, Max: *c.ParamMax}
}

// Viewport builds the starting viewport.
func (c *Config) Viewport() plot.Viewport {
	v := plot.NewViewport(c.Dim)
	v.Center = plot.Pt(c.View.CenterX, c.View.CenterY)
	v.Zoom = c.View.Zoom
	v.AxisEnabled = c.View.Axis
	v.Normalize()
	return v
}

// Colors returns the parsed background and foreground. Call Validate first;
// unparsable colors fall back to white on black.
func (c *Config) Colors() (bg, fg plot.RGB) {
	bg, err := plot.ParseRGB(c.Background)
	if err != nil {
		bg = plot.White
	}
	fg, err = plot.ParseRGB(c.Foreground)
	if err != nil {
		fg = plot.Black
	}
	return bg, fg
}
