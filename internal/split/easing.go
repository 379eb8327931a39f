package split

// Easing maps normalized animation time in [0,1] onto a progress fraction.
// Implementations must return 0 at 0 and 1 at 1 so animations land exactly
// on their target.
type Easing func(t float64) float64

// EaseLinear advances at constant speed.
func EaseLinear(t float64) float64 { return t }

// EaseOutQuad decelerates toward the target.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutCubic accelerates through the first half and decelerates
// through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
