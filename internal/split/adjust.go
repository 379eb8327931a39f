package split

import (
	"math"

	"github.com/llehouerou/sash/internal/split/constraint"
)

// minAdjustDelta is the change below which a keyboard adjustment is
// considered a no-op and emits nothing.
const minAdjustDelta = 1e-9

// Adjuster translates discrete keyboard intents into ratio changes routed
// through the same effective-bounds clamp as dragging. Accepted changes
// re-emit OnRatioChanged and fire the haptic hook; when the divider is not
// resizable or keyboard adjustment is off, every method is a no-op.
type Adjuster struct {
	c        *Controller
	disabled bool
}

func newAdjuster(c *Controller) *Adjuster {
	return &Adjuster{c: c}
}

// Step nudges the ratio by dir (±1) times the fine keyboard step.
func (a *Adjuster) Step(dir int) {
	a.applyDelta(float64(dir) * a.c.opts.KeyboardStep)
}

// Page moves the ratio by dir (±1) times the page step.
func (a *Adjuster) Page(dir int) {
	a.applyDelta(float64(dir) * a.c.opts.PageStep)
}

// JumpMin moves the ratio to the effective lower bound.
func (a *Adjuster) JumpMin() {
	a.applyTarget(0)
}

// JumpMax moves the ratio to the effective upper bound.
func (a *Adjuster) JumpMax() {
	a.applyTarget(1)
}

// EndSession evaluates snapping once, for when keyboard focus leaves the
// divider. Mirrors the snap commit at drag end.
func (a *Adjuster) EndSession() {
	if !a.enabled() {
		return
	}
	c := a.c
	v, ok := Nearest(c.store.Value(), c.opts.SnapPoints, c.opts.SnapTolerance)
	if !ok {
		return
	}
	a.commit(constraint.ClampRatio(v, c.extent, c.cfg))
}

func (a *Adjuster) enabled() bool {
	return !a.disabled && a.c.opts.Resizable && a.c.opts.Keyboard && a.c.phase != PhaseDragging
}

func (a *Adjuster) applyDelta(delta float64) {
	if !a.enabled() {
		return
	}
	c := a.c
	a.commit(constraint.ClampRatio(c.store.Value()+delta, c.extent, c.cfg))
}

func (a *Adjuster) applyTarget(edge float64) {
	if !a.enabled() {
		return
	}
	a.commit(constraint.ClampRatio(edge, a.c.extent, a.c.cfg))
}

func (a *Adjuster) commit(target float64) {
	c := a.c
	if math.Abs(target-c.store.Value()) <= minAdjustDelta {
		return
	}
	c.store.CancelAnimation()
	if !c.store.Update(target, 0) {
		return
	}
	if c.cb.OnRatioChanged != nil {
		c.cb.OnRatioChanged(c.store.Value())
	}
	if c.opts.Haptic != nil {
		c.opts.Haptic()
	}
}
