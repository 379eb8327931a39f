package render

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMeter(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		width int
		want  string
	}{
		{
			name:  "empty at zero",
			ratio: 0,
			width: 15,
			want:  "[────────]   0%",
		},
		{
			name:  "full at one",
			ratio: 1,
			width: 15,
			want:  "[━━━━━━━━] 100%",
		},
		{
			name:  "half",
			ratio: 0.5,
			width: 15,
			want:  "[━━━━────]  50%",
		},
		{
			name:  "rounded fill",
			ratio: 0.4,
			width: 15,
			want:  "[━━━─────]  40%",
		},
		{
			name:  "clamped above one",
			ratio: 1.3,
			width: 15,
			want:  "[━━━━━━━━] 100%",
		},
		{
			name:  "clamped below zero",
			ratio: -0.2,
			width: 15,
			want:  "[────────]   0%",
		},
		{
			name:  "label only when too narrow",
			ratio: 0.75,
			width: 8,
			want:  " 75%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Meter(tt.ratio, tt.width)
			if got != tt.want {
				t.Errorf("Meter(%v, %d) = %q, want %q", tt.ratio, tt.width, got, tt.want)
			}
		})
	}
}

func TestMeterWidthExact(t *testing.T) {
	for width := 10; width <= 30; width++ {
		got := Meter(0.5, width)
		if n := utf8.RuneCountInString(got); n != width {
			t.Errorf("Meter(0.5, %d) renders %d cells: %q", width, n, got)
		}
	}
}

func TestMeterNaN(t *testing.T) {
	got := Meter(math.NaN(), 15)
	if !strings.HasSuffix(got, "0%") {
		t.Errorf("Meter(NaN, 15) = %q, want zero gauge", got)
	}
}
