// Package config holds the settings of the cpixel command, loaded from defaults, an optional .env file and CPIXEL_*
// environment variables (in that order of precedence, lowest first). Command line flags are applied on top by the
// command itself.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nebbyJammin/cpixel/cpixel"
	"github.com/nebbyJammin/cpixel/internal/imageio"
)

// DefaultEnvFile is loaded by the command unless CPIXEL_ENV_FILE names another file.
const DefaultEnvFile = ".env"

// Config mirrors the command line flags.
type Config struct {
	// Width and Height are the output area in character cells. 0 means use the terminal size.
	Width  uint
	Height uint

	// CellWidth and CellHeight are the pixel footprint of one character cell. 0 means ask the terminal.
	CellWidth  uint
	CellHeight uint

	Contrast  bool
	Pad       bool
	Edges     bool
	Resample  string
	Luminance string
	// Depth is the pixel bit depth images are converted to: 8, 16 or 32.
	Depth int
	// Ramp is the glyph ramp, darkest first. Empty means cpixel.DefaultGlyphRamp.
	Ramp    string
	Workers int
}

// NewDefault returns the settings used when nothing else is configured.
func NewDefault() *Config {
	return &Config{
		Contrast:  false,
		Pad:       true,
		Resample:  cpixel.ResamplingModes.Bilinear().String(),
		Luminance: imageio.LuminanceModels.Rec709().String(),
		Depth:     8,
		Workers:   1,
	}
}

// envVars maps each environment variable to the setter for its field.
var envVars = map[string]func(c *Config, v string) error{
	"CPIXEL_WIDTH":       func(c *Config, v string) error { return parseUint(v, &c.Width) },
	"CPIXEL_HEIGHT":      func(c *Config, v string) error { return parseUint(v, &c.Height) },
	"CPIXEL_CELL_WIDTH":  func(c *Config, v string) error { return parseUint(v, &c.CellWidth) },
	"CPIXEL_CELL_HEIGHT": func(c *Config, v string) error { return parseUint(v, &c.CellHeight) },
	"CPIXEL_CONTRAST":    func(c *Config, v string) error { return parseBool(v, &c.Contrast) },
	"CPIXEL_PAD":         func(c *Config, v string) error { return parseBool(v, &c.Pad) },
	"CPIXEL_EDGES":       func(c *Config, v string) error { return parseBool(v, &c.Edges) },
	"CPIXEL_RESAMPLE":    func(c *Config, v string) error { c.Resample = v; return nil },
	"CPIXEL_LUMINANCE":   func(c *Config, v string) error { c.Luminance = v; return nil },
	"CPIXEL_DEPTH":       func(c *Config, v string) error { return parseInt(v, &c.Depth) },
	"CPIXEL_RAMP":        func(c *Config, v string) error { c.Ramp = v; return nil },
	"CPIXEL_WORKERS":     func(c *Config, v string) error { return parseInt(v, &c.Workers) },
}

/*
Load returns the defaults overridden by the environment. If envFile is not empty it is loaded first with godotenv; variables already set in the process environment win over the file. A missing envFile is not an error.
*/
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := NewDefault()
	for name, set := range envVars {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if err := set(cfg, strings.TrimSpace(v)); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	return cfg, nil
}

// Validate checks every enumerated setting can be parsed.
func (c *Config) Validate() error {
	if _, err := c.ResamplingMode(); err != nil {
		return err
	}
	if _, err := c.LuminanceModel(); err != nil {
		return err
	}
	if _, err := c.GlyphRamp(); err != nil {
		return err
	}

	switch c.Depth {
	case 8, 16, 32:
	default:
		return fmt.Errorf("unsupported pixel depth: %d", c.Depth)
	}

	return nil
}

func (c *Config) ResamplingMode() (cpixel.ResamplingMode, error) {
	return cpixel.ParseResamplingMode(c.Resample)
}

func (c *Config) LuminanceModel() (imageio.LuminanceModel, error) {
	return imageio.ParseLuminanceModel(c.Luminance)
}

func (c *Config) GlyphRamp() (cpixel.GlyphRamp, error) {
	if c.Ramp == "" {
		return cpixel.DefaultGlyphRamp, nil
	}
	return cpixel.NewGlyphRamp(c.Ramp)
}

// Constraints is the configured output area, with zero sides replaced by fallback.
func (c *Config) Constraints(fallback cpixel.Dimensions) cpixel.Dimensions {
	return orFallback(cpixel.Dimensions{Height: c.Height, Width: c.Width}, fallback)
}

// Footprint is the configured cell footprint, with zero sides replaced by fallback.
func (c *Config) Footprint(fallback cpixel.Dimensions) cpixel.Dimensions {
	return orFallback(cpixel.Dimensions{Height: c.CellHeight, Width: c.CellWidth}, fallback)
}

func orFallback(d, fallback cpixel.Dimensions) cpixel.Dimensions {
	if d.Height == 0 {
		d.Height = fallback.Height
	}
	if d.Width == 0 {
		d.Width = fallback.Width
	}
	return d
}

func parseUint(s string, dst *uint) error {
	v, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return err
	}
	*dst = uint(v)
	return nil
}

func parseInt(s string, dst *int) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseBool(s string, dst *bool) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
