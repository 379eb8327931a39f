package render

import (
	"fmt"
	"math"
	"strings"
)

// Meter renders a ratio in [0,1] as a bracketed gauge with a percentage,
// e.g. "[━━━━────] 40%". width is the total cell width including the
// label; when a usable bar does not fit only the label is returned.
func Meter(ratio float64, width int) string {
	if math.IsNaN(ratio) {
		ratio = 0
	}
	ratio = min(max(ratio, 0), 1)

	label := fmt.Sprintf("%3.0f%%", ratio*100)

	// "[" + bar + "]" + space + label
	barWidth := width - len(label) - 3
	if barWidth < 3 {
		return label
	}

	filled := int(math.Round(ratio * float64(barWidth)))
	return "[" + strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled) + "] " + label
}
