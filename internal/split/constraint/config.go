// Package constraint resolves a desired split ratio against cell minimums,
// ratio bounds, and an overflow policy, producing a legal pane geometry.
package constraint

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Policy decides where the divider goes when the combined pane minimums
// leave no legal ratio range ("cramped").
type Policy int

const (
	// FavorStart keeps the start pane at its minimum; the end pane takes what remains.
	FavorStart Policy = iota
	// FavorEnd keeps the end pane at its minimum; the start pane takes what remains.
	FavorEnd
	// Proportional splits in proportion to the configured minimums.
	Proportional
)

// String returns the policy name as used in config files.
func (p Policy) String() string {
	switch p {
	case FavorStart:
		return "favor-start"
	case FavorEnd:
		return "favor-end"
	case Proportional:
		return "proportional"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a config string into a Policy.
// The empty string maps to FavorStart.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "favor-start", "favorstart", "start":
		return FavorStart, nil
	case "favor-end", "favorend", "end":
		return FavorEnd, nil
	case "proportional":
		return Proportional, nil
	}
	return FavorStart, fmt.Errorf("%w: %q", ErrBadPolicy, s)
}

// Validation errors returned by Config.Validate. Callers match them with
// errors.Is.
var (
	ErrRatioBounds = errors.New("ratio bounds must satisfy 0 <= min < max <= 1")
	ErrNegativeMin = errors.New("pane minimums must not be negative")
	ErrBadPolicy   = errors.New("unknown overflow policy")
)

// Config describes the legal range of divider positions. MinStart and
// MinEnd are in cells; the ratio bounds are fractions of the available
// extent. The zero value is invalid (empty ratio range); start from
// DefaultConfig.
type Config struct {
	MinRatio float64 // lower ratio bound, inclusive
	MaxRatio float64 // upper ratio bound, inclusive
	MinStart float64 // minimum start pane extent in cells
	MinEnd   float64 // minimum end pane extent in cells
	Policy   Policy  // cramped-state resolution
}

// DefaultConfig returns a full-range config with no pane minimums.
func DefaultConfig() Config {
	return Config{MinRatio: 0, MaxRatio: 1}
}

// Validate checks the config eagerly so construction fails before any
// geometry pass runs with bad values.
func (c Config) Validate() error {
	if math.IsNaN(c.MinRatio) || math.IsNaN(c.MaxRatio) ||
		c.MinRatio < 0 || c.MaxRatio > 1 || c.MinRatio >= c.MaxRatio {
		return fmt.Errorf("%w: min=%v max=%v", ErrRatioBounds, c.MinRatio, c.MaxRatio)
	}
	if math.IsNaN(c.MinStart) || math.IsNaN(c.MinEnd) || c.MinStart < 0 || c.MinEnd < 0 {
		return fmt.Errorf("%w: start=%v end=%v", ErrNegativeMin, c.MinStart, c.MinEnd)
	}
	if c.Policy < FavorStart || c.Policy > Proportional {
		return fmt.Errorf("%w: %d", ErrBadPolicy, int(c.Policy))
	}
	return nil
}
