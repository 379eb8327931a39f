// Package config loads the application configuration from TOML files,
// applies defaults, and validates the split constraints eagerly so a bad
// config fails at startup instead of mid-drag.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/sash/internal/split/constraint"
)

// ErrConfig is wrapped around every validation failure in this package.
var ErrConfig = errors.New("invalid configuration")

type Config struct {
	StartFolder string `koanf:"start_folder"` // empty means use cwd

	Split     SplitConfig     `koanf:"split"`
	Divider   DividerConfig   `koanf:"divider"`
	Animation AnimationConfig `koanf:"animation"`
}

// SplitConfig constrains the divider position.
type SplitConfig struct {
	InitialRatio float64 `koanf:"initial_ratio"`
	MinRatio     float64 `koanf:"min_ratio"`
	MaxRatio     float64 `koanf:"max_ratio"`

	// Per-side cell minimums. A negative value uses MinPaneCells.
	MinStartCells float64 `koanf:"min_start_cells"`
	MinEndCells   float64 `koanf:"min_end_cells"`
	MinPaneCells  float64 `koanf:"min_pane_cells"` // shared fallback

	OverflowPolicy string    `koanf:"overflow_policy"` // "favor-start", "favor-end", "proportional"
	SnapPoints     []float64 `koanf:"snap_points"`
	SnapTolerance  float64   `koanf:"snap_tolerance"`
}

// DividerConfig tunes the divider widget itself.
type DividerConfig struct {
	Thickness      int     `koanf:"thickness"` // cells
	Resizable      *bool   `koanf:"resizable"` // default true
	KeyboardStep   float64 `koanf:"keyboard_step"`
	PageStep       float64 `koanf:"page_step"`
	HitPadding     int     `koanf:"hit_padding"`      // extra cells around the bar that accept presses
	DoubleTapRatio float64 `koanf:"double_tap_ratio"` // negative disables
	Orientation    string  `koanf:"orientation"`      // "vertical" or "horizontal"
	FallbackExtent float64 `koanf:"fallback_extent"`  // used when the terminal size is unknown
}

// AnimationConfig tunes animated ratio transitions.
type AnimationConfig struct {
	DurationMs int `koanf:"duration_ms"`
	Steps      int `koanf:"steps"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	resizable := true
	return &Config{
		Split: SplitConfig{
			InitialRatio:   0.5,
			MinRatio:       0,
			MaxRatio:       1,
			MinStartCells:  -1,
			MinEndCells:    -1,
			MinPaneCells:   10,
			OverflowPolicy: "favor-start",
			SnapPoints:     []float64{0.25, 0.5, 0.75},
			SnapTolerance:  0.03,
		},
		Divider: DividerConfig{
			Thickness:      1,
			Resizable:      &resizable,
			KeyboardStep:   0.01,
			PageStep:       0.1,
			HitPadding:     1,
			DoubleTapRatio: 0.5,
			Orientation:    "vertical",
			FallbackExtent: 80,
		},
		Animation: AnimationConfig{
			DurationMs: 200,
			Steps:      12,
		},
	}
}

// Load reads the config files (last wins), applies defaults, and
// validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.StartFolder != "" {
		cfg.StartFolder = expandPath(cfg.StartFolder)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks everything the split core will later assume.
func (c *Config) Validate() error {
	if _, err := c.Constraint(); err != nil {
		return err
	}
	if c.Divider.Thickness < 0 {
		return fmt.Errorf("%w: negative divider thickness %d", ErrConfig, c.Divider.Thickness)
	}
	if c.Divider.HitPadding < 0 {
		return fmt.Errorf("%w: negative hit padding %d", ErrConfig, c.Divider.HitPadding)
	}
	if c.Divider.KeyboardStep < 0 || c.Divider.PageStep < 0 {
		return fmt.Errorf("%w: negative keyboard step", ErrConfig)
	}
	if c.Split.InitialRatio < 0 || c.Split.InitialRatio > 1 {
		return fmt.Errorf("%w: initial ratio %v outside [0,1]", ErrConfig, c.Split.InitialRatio)
	}
	if c.Split.SnapTolerance < 0 {
		return fmt.Errorf("%w: negative snap tolerance", ErrConfig)
	}
	switch c.Divider.Orientation {
	case "vertical", "horizontal":
	default:
		return fmt.Errorf("%w: unknown orientation %q", ErrConfig, c.Divider.Orientation)
	}
	return nil
}

// Constraint builds the validated constraint config from the split
// section, resolving the shared pane-minimum fallback.
func (c *Config) Constraint() (constraint.Config, error) {
	policy, err := constraint.ParsePolicy(c.Split.OverflowPolicy)
	if err != nil {
		return constraint.Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	minStart := c.Split.MinStartCells
	if minStart < 0 {
		minStart = c.Split.MinPaneCells
	}
	minEnd := c.Split.MinEndCells
	if minEnd < 0 {
		minEnd = c.Split.MinPaneCells
	}

	cc := constraint.Config{
		MinRatio: c.Split.MinRatio,
		MaxRatio: c.Split.MaxRatio,
		MinStart: minStart,
		MinEnd:   minEnd,
		Policy:   policy,
	}
	if err := cc.Validate(); err != nil {
		return constraint.Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return cc, nil
}

// IsResizable resolves the resizable toggle's default.
func (c *Config) IsResizable() bool {
	return c.Divider.Resizable == nil || *c.Divider.Resizable
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/sash/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "sash", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
