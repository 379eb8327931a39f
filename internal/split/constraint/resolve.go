package constraint

import "math"

// Split is the resolved geometry for one layout pass.
type Split struct {
	Ratio  float64 // legal ratio actually applied
	First  float64 // start pane extent in cells
	Second float64 // end pane extent in cells
}

// Available returns the extent left for the two panes once the divider
// takes its thickness. Never negative.
func Available(total, thickness float64) float64 {
	if a := total - thickness; a > 0 {
		return a
	}
	return 0
}

// Bounds returns the effective ratio range for the given extent: the
// configured ratio bounds tightened by the cell minimums. cramped reports
// that the constraints leave no legal range (lo > hi). A non-positive or
// non-finite extent yields the configured bounds unchanged, since cell
// minimums cannot be expressed against it.
func Bounds(cfg Config, extent float64) (lo, hi float64, cramped bool) {
	if !(extent > 0) || math.IsInf(extent, 1) {
		return cfg.MinRatio, cfg.MaxRatio, cfg.MinRatio > cfg.MaxRatio
	}
	cellMin := clamp(cfg.MinStart/extent, 0, 1)
	cellMax := clamp(1-cfg.MinEnd/extent, 0, 1)
	lo = math.Max(cfg.MinRatio, cellMin)
	hi = math.Min(cfg.MaxRatio, cellMax)
	return lo, hi, lo > hi
}

// ClampRatio clamps ratio into the effective bounds for extent. In the
// cramped state it returns the policy's resolution point instead, so the
// result is always a ratio the layout can actually honor.
func ClampRatio(ratio, extent float64, cfg Config) float64 {
	lo, hi, cramped := Bounds(cfg, extent)
	if cramped {
		return crampedRatio(cfg, lo, hi)
	}
	if math.IsNaN(ratio) {
		return lo
	}
	return clamp(ratio, lo, hi)
}

// crampedRatio picks the divider position when the constraints cannot all
// be honored. lo and hi are the (inverted) effective bounds.
func crampedRatio(cfg Config, lo, hi float64) float64 {
	switch cfg.Policy {
	case FavorEnd:
		return hi
	case Proportional:
		if total := cfg.MinStart + cfg.MinEnd; total > 0 {
			return cfg.MinStart / total
		}
		return 0.5
	default:
		return lo
	}
}

// Resolve maps a desired ratio onto pane extents for the given available
// extent. It is pure and deterministic: same inputs, same Split. Feeding
// the returned Ratio back in yields the same geometry when not cramped.
// A non-positive or non-finite extent collapses both panes to zero.
func Resolve(ratio, extent float64, cfg Config) Split {
	if !(extent > 0) || math.IsInf(extent, 1) {
		return Split{Ratio: clamp(ratio, 0, 1)}
	}
	eff := ClampRatio(ratio, extent, cfg)
	first := clamp(extent*eff, 0, extent)
	return Split{Ratio: eff, First: first, Second: extent - first}
}

// ResolveCells resolves like Resolve but floors the start extent onto the
// integer cell grid, which keeps pane edges crisp in a character terminal.
// When flooring pushes the start pane outside its configured minimums the
// extent is pulled back into [MinStart, extent-MinEnd]; if those minimums
// themselves conflict, the overflow policy decides from the configured
// minimums directly so the favored pane lands on its exact minimum.
func ResolveCells(ratio, extent float64, cfg Config) Split {
	s := Resolve(ratio, extent, cfg)
	if !(extent > 0) || math.IsInf(extent, 1) {
		return s
	}
	first := math.Floor(s.First)
	loCells := cfg.MinStart
	hiCells := extent - cfg.MinEnd
	switch {
	case loCells <= hiCells:
		first = clamp(first, loCells, hiCells)
	case cfg.Policy == FavorEnd:
		first = hiCells
	case cfg.Policy == Proportional:
		if total := cfg.MinStart + cfg.MinEnd; total > 0 {
			first = math.Floor(extent * cfg.MinStart / total)
		} else {
			first = math.Floor(extent / 2)
		}
	default:
		first = loCells
	}
	first = clamp(first, 0, extent)
	return Split{Ratio: s.Ratio, First: first, Second: extent - first}
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
