//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/sash/internal/split/constraint"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/projects",
			expected: filepath.Join(home, "projects"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/projects/docs/notes",
			expected: filepath.Join(home, "projects", "docs", "notes"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/share",
			expected: "/usr/local/share",
		},
		{
			name:     "relative path unchanged",
			input:    "projects/docs",
			expected: "projects/docs",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("expected at least one config path")
	}
	// ./config.toml must come last so it wins.
	if paths[len(paths)-1] != "config.toml" {
		t.Errorf("last path = %q, want \"config.toml\"", paths[len(paths)-1])
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got: %v", err)
	}
}

func TestConstraint_SharedMinimumFallback(t *testing.T) {
	cfg := Default()
	cfg.Split.MinPaneCells = 12
	cfg.Split.MinStartCells = -1
	cfg.Split.MinEndCells = 4

	cc, err := cfg.Constraint()
	if err != nil {
		t.Fatalf("Constraint failed: %v", err)
	}
	if cc.MinStart != 12 {
		t.Errorf("MinStart = %v, want shared fallback 12", cc.MinStart)
	}
	if cc.MinEnd != 4 {
		t.Errorf("MinEnd = %v, want explicit 4", cc.MinEnd)
	}
}

func TestConstraint_PolicyParsing(t *testing.T) {
	tests := []struct {
		policy   string
		expected constraint.Policy
		wantErr  bool
	}{
		{"favor-start", constraint.FavorStart, false},
		{"favor-end", constraint.FavorEnd, false},
		{"proportional", constraint.Proportional, false},
		{"", constraint.FavorStart, false},
		{"sideways", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			cfg := Default()
			cfg.Split.OverflowPolicy = tt.policy

			cc, err := cfg.Constraint()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown policy")
				}
				if !errors.Is(err, ErrConfig) {
					t.Errorf("error should wrap ErrConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Constraint failed: %v", err)
			}
			if cc.Policy != tt.expected {
				t.Errorf("Policy = %v, want %v", cc.Policy, tt.expected)
			}
		})
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted ratio bounds", func(c *Config) { c.Split.MinRatio = 0.8; c.Split.MaxRatio = 0.2 }},
		{"ratio bounds outside unit range", func(c *Config) { c.Split.MaxRatio = 1.5 }},
		{"negative shared minimum", func(c *Config) { c.Split.MinPaneCells = -3 }},
		{"negative thickness", func(c *Config) { c.Divider.Thickness = -1 }},
		{"negative hit padding", func(c *Config) { c.Divider.HitPadding = -2 }},
		{"negative keyboard step", func(c *Config) { c.Divider.KeyboardStep = -0.01 }},
		{"initial ratio above 1", func(c *Config) { c.Split.InitialRatio = 1.2 }},
		{"negative snap tolerance", func(c *Config) { c.Split.SnapTolerance = -0.1 }},
		{"unknown orientation", func(c *Config) { c.Divider.Orientation = "diagonal" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestIsResizable(t *testing.T) {
	cfg := Default()
	if !cfg.IsResizable() {
		t.Error("default config should be resizable")
	}

	f := false
	cfg.Divider.Resizable = &f
	if cfg.IsResizable() {
		t.Error("explicit false should disable resizing")
	}

	cfg.Divider.Resizable = nil
	if !cfg.IsResizable() {
		t.Error("nil toggle should default to resizable")
	}
}
