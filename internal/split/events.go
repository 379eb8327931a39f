package split

// Callbacks are a controller's outbound notifications. Every field is
// optional; set ones run synchronously on the goroutine that performed the
// mutation, after the store has been updated.
type Callbacks struct {
	// OnDragStart fires when a drag session opens, with the ratio at grab.
	OnDragStart func(ratio float64)
	// OnDragEnd fires when a drag session closes, with the settled ratio.
	// Skipped when the controller is closed mid-drag.
	OnDragEnd func(ratio float64)
	// OnRatioChanged fires for each ratio change accepted during dragging,
	// keyboard adjustment, or snapping.
	OnRatioChanged func(ratio float64)
	// OnTap fires for a single tap on the handle.
	OnTap func(ratio float64)
	// OnDoubleTap fires for a double tap, before any configured animation
	// toward the double-tap target starts.
	OnDoubleTap func(ratio float64)
}
