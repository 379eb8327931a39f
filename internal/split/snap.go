package split

import "math"

// Nearest returns the snap point closest to v by absolute distance,
// provided that distance is within tolerance. Equidistant points resolve
// to the first occurrence in the list. Reports false when the list is
// empty or nothing is close enough.
func Nearest(v float64, points []float64, tolerance float64) (float64, bool) {
	if len(points) == 0 || tolerance < 0 || math.IsNaN(v) {
		return 0, false
	}
	best := points[0]
	bestDist := math.Abs(v - points[0])
	for _, p := range points[1:] {
		if d := math.Abs(v - p); d < bestDist {
			best, bestDist = p, d
		}
	}
	if bestDist <= tolerance {
		return best, true
	}
	return 0, false
}
