package constraint

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		total     float64
		thickness float64
		want      float64
	}{
		{300, 10, 290},
		{360, 8, 352},
		{100, 0, 100},
		{5, 10, 0},
		{0, 1, 0},
	}

	for _, tt := range tests {
		if got := Available(tt.total, tt.thickness); got != tt.want {
			t.Errorf("Available(%v, %v) = %v, want %v", tt.total, tt.thickness, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		extent      float64
		wantLo      float64
		wantHi      float64
		wantCramped bool
	}{
		{
			name:   "no minimums full range",
			cfg:    DefaultConfig(),
			extent: 100,
			wantLo: 0,
			wantHi: 1,
		},
		{
			name:   "cell minimums tighten range",
			cfg:    Config{MinRatio: 0, MaxRatio: 1, MinStart: 200, MinEnd: 50},
			extent: 290,
			wantLo: 200.0 / 290.0,
			wantHi: 1 - 50.0/290.0,
		},
		{
			name:   "ratio bounds win over loose minimums",
			cfg:    Config{MinRatio: 0.3, MaxRatio: 0.7, MinStart: 10, MinEnd: 10},
			extent: 100,
			wantLo: 0.3,
			wantHi: 0.7,
		},
		{
			name:        "minimums exceed extent",
			cfg:         Config{MinRatio: 0, MaxRatio: 1, MinStart: 80, MinEnd: 40},
			extent:      100,
			wantLo:      0.8,
			wantHi:      0.6,
			wantCramped: true,
		},
		{
			name:        "ratio bound collides with cell minimum",
			cfg:         Config{MinRatio: 0, MaxRatio: 0.5, MinStart: 200, MinEnd: 150},
			extent:      352,
			wantLo:      200.0 / 352.0,
			wantHi:      0.5,
			wantCramped: true,
		},
		{
			name:   "zero extent keeps configured bounds",
			cfg:    Config{MinRatio: 0.2, MaxRatio: 0.9, MinStart: 50, MinEnd: 50},
			extent: 0,
			wantLo: 0.2,
			wantHi: 0.9,
		},
		{
			name:   "infinite extent keeps configured bounds",
			cfg:    Config{MinRatio: 0.1, MaxRatio: 0.8, MinStart: 50, MinEnd: 50},
			extent: math.Inf(1),
			wantLo: 0.1,
			wantHi: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, cramped := Bounds(tt.cfg, tt.extent)
			if !almostEqual(lo, tt.wantLo) || !almostEqual(hi, tt.wantHi) || cramped != tt.wantCramped {
				t.Errorf("Bounds() = (%v, %v, %v), want (%v, %v, %v)",
					lo, hi, cramped, tt.wantLo, tt.wantHi, tt.wantCramped)
			}
		})
	}
}

func TestClampRatio(t *testing.T) {
	tests := []struct {
		name   string
		ratio  float64
		extent float64
		cfg    Config
		want   float64
	}{
		{
			name:   "inside range untouched",
			ratio:  0.5,
			extent: 100,
			cfg:    DefaultConfig(),
			want:   0.5,
		},
		{
			name:   "raised to cell minimum",
			ratio:  0.1,
			extent: 290,
			cfg:    Config{MinRatio: 0, MaxRatio: 1, MinStart: 200, MinEnd: 50},
			want:   200.0 / 290.0,
		},
		{
			name:   "lowered to ratio bound",
			ratio:  0.95,
			extent: 100,
			cfg:    Config{MinRatio: 0.2, MaxRatio: 0.8},
			want:   0.8,
		},
		{
			name:   "cramped favor start pins to start minimum",
			ratio:  0.5,
			extent: 100,
			cfg:    Config{MinRatio: 0, MaxRatio: 1, MinStart: 80, MinEnd: 40, Policy: FavorStart},
			want:   0.8,
		},
		{
			name:   "cramped favor end pins to end minimum",
			ratio:  0.5,
			extent: 100,
			cfg:    Config{MinRatio: 0, MaxRatio: 1, MinStart: 80, MinEnd: 40, Policy: FavorEnd},
			want:   0.6,
		},
		{
			name:   "cramped proportional splits by minimums",
			ratio:  0.5,
			extent: 100,
			cfg:    Config{MinRatio: 0, MaxRatio: 1, MinStart: 80, MinEnd: 40, Policy: Proportional},
			want:   80.0 / 120.0,
		},
		{
			name:   "nan ratio falls to lower bound",
			ratio:  math.NaN(),
			extent: 100,
			cfg:    Config{MinRatio: 0.25, MaxRatio: 0.75},
			want:   0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampRatio(tt.ratio, tt.extent, tt.cfg); !almostEqual(got, tt.want) {
				t.Errorf("ClampRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		ratio      float64
		extent     float64
		cfg        Config
		wantFirst  float64
		wantSecond float64
	}{
		{
			name:       "even split",
			ratio:      0.5,
			extent:     100,
			cfg:        DefaultConfig(),
			wantFirst:  50,
			wantSecond: 50,
		},
		{
			name:       "ratio below start minimum is raised",
			ratio:      0.1,
			extent:     290,
			cfg:        Config{MinRatio: 0, MaxRatio: 1, MinStart: 200, MinEnd: 50},
			wantFirst:  200,
			wantSecond: 90,
		},
		{
			name:       "ratio above end minimum is lowered",
			ratio:      0.95,
			extent:     290,
			cfg:        Config{MinRatio: 0, MaxRatio: 1, MinStart: 200, MinEnd: 50},
			wantFirst:  240,
			wantSecond: 50,
		},
		{
			name:       "cramped favor start gives start its minimum",
			ratio:      0.2,
			extent:     100,
			cfg:        Config{MinRatio: 0, MaxRatio: 1, MinStart: 80, MinEnd: 40, Policy: FavorStart},
			wantFirst:  80,
			wantSecond: 20,
		},
		{
			name:       "cramped favor end gives end its minimum",
			ratio:      0.2,
			extent:     100,
			cfg:        Config{MinRatio: 0, MaxRatio: 1, MinStart: 80, MinEnd: 40, Policy: FavorEnd},
			wantFirst:  60,
			wantSecond: 40,
		},
		{
			name:       "start minimum larger than extent consumes everything",
			ratio:      0.5,
			extent:     60,
			cfg:        Config{MinRatio: 0, MaxRatio: 1, MinStart: 80, Policy: FavorStart},
			wantFirst:  60,
			wantSecond: 0,
		},
		{
			name:       "zero extent collapses both panes",
			ratio:      0.5,
			extent:     0,
			cfg:        DefaultConfig(),
			wantFirst:  0,
			wantSecond: 0,
		},
		{
			name:       "negative extent collapses both panes",
			ratio:      0.5,
			extent:     -20,
			cfg:        DefaultConfig(),
			wantFirst:  0,
			wantSecond: 0,
		},
		{
			name:       "infinite extent collapses both panes",
			ratio:      0.5,
			extent:     math.Inf(1),
			cfg:        DefaultConfig(),
			wantFirst:  0,
			wantSecond: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.ratio, tt.extent, tt.cfg)
			if !almostEqual(got.First, tt.wantFirst) || !almostEqual(got.Second, tt.wantSecond) {
				t.Errorf("Resolve() = (%v, %v), want (%v, %v)",
					got.First, got.Second, tt.wantFirst, tt.wantSecond)
			}
		})
	}
}

// Resolving the ratio a resolve already produced must not move the divider.
func TestResolveIdempotent(t *testing.T) {
	cfgs := []Config{
		DefaultConfig(),
		{MinRatio: 0, MaxRatio: 1, MinStart: 200, MinEnd: 50},
		{MinRatio: 0.25, MaxRatio: 0.75, MinStart: 20, MinEnd: 20},
		{MinRatio: 0.1, MaxRatio: 0.9, MinStart: 0, MinEnd: 120},
	}
	extents := []float64{50, 100, 290, 352, 1000}
	ratios := []float64{0, 0.1, 0.33, 0.5, 0.77, 1}

	for _, cfg := range cfgs {
		for _, extent := range extents {
			for _, ratio := range ratios {
				first := Resolve(ratio, extent, cfg)
				second := Resolve(first.Ratio, extent, cfg)
				if !almostEqual(first.First, second.First) || !almostEqual(first.Second, second.Second) {
					t.Errorf("Resolve not idempotent: cfg=%+v extent=%v ratio=%v first=%+v second=%+v",
						cfg, extent, ratio, first, second)
				}
			}
		}
	}
}

func TestResolveCells(t *testing.T) {
	tests := []struct {
		name       string
		ratio      float64
		extent     float64
		cfg        Config
		wantFirst  float64
		wantSecond float64
	}{
		{
			name:       "start minimum wins over low ratio",
			ratio:      0.1,
			extent:     290,
			cfg:        Config{MinRatio: 0, MaxRatio: 1, MinStart: 200, MinEnd: 50},
			wantFirst:  200,
			wantSecond: 90,
		},
		{
			name:       "ratio bound collision favors start minimum",
			ratio:      0.8,
			extent:     352,
			cfg:        Config{MinRatio: 0, MaxRatio: 0.5, MinStart: 200, MinEnd: 150, Policy: FavorStart},
			wantFirst:  200,
			wantSecond: 152,
		},
		{
			name:       "fractional extent floors to cell grid",
			ratio:      0.5,
			extent:     103,
			cfg:        DefaultConfig(),
			wantFirst:  51,
			wantSecond: 52,
		},
		{
			name:       "floor below fractional minimum is pulled back",
			ratio:      0.3,
			extent:     100,
			cfg:        Config{MinRatio: 0, MaxRatio: 1, MinStart: 34.5},
			wantFirst:  34.5,
			wantSecond: 65.5,
		},
		{
			name:       "cramped favor end lands end pane on its minimum",
			ratio:      0.9,
			extent:     100,
			cfg:        Config{MinRatio: 0, MaxRatio: 1, MinStart: 80, MinEnd: 40, Policy: FavorEnd},
			wantFirst:  60,
			wantSecond: 40,
		},
		{
			name:       "cramped proportional splits by minimums",
			ratio:      0.5,
			extent:     100,
			cfg:        Config{MinRatio: 0, MaxRatio: 1, MinStart: 80, MinEnd: 40, Policy: Proportional},
			wantFirst:  66,
			wantSecond: 34,
		},
		{
			name:       "zero extent stays collapsed",
			ratio:      0.4,
			extent:     0,
			cfg:        DefaultConfig(),
			wantFirst:  0,
			wantSecond: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCells(tt.ratio, tt.extent, tt.cfg)
			if got.First != tt.wantFirst || got.Second != tt.wantSecond {
				t.Errorf("ResolveCells() = (%v, %v), want (%v, %v)",
					got.First, got.Second, tt.wantFirst, tt.wantSecond)
			}
		})
	}
}
