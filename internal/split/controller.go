package split

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/llehouerou/sash/internal/split/constraint"
)

// ErrOption is returned when controller options carry illegal values.
var ErrOption = errors.New("invalid divider option")

// Phase is the drag state machine's position.
type Phase int

const (
	// PhaseIdle means no pointer interaction is underway.
	PhaseIdle Phase = iota
	// PhaseArmed means a pointer pressed inside the hit region but the
	// gesture has not been recognized as a drag yet.
	PhaseArmed
	// PhaseDragging means a drag session owns the divider.
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Options tune controller behavior beyond the geometry constraints.
type Options struct {
	Resizable      bool    // divider reacts to input at all
	Keyboard       bool    // keyboard adjustment enabled
	KeyboardStep   float64 // ratio delta for a fine step
	PageStep       float64 // ratio delta for a coarse step
	SnapPoints     []float64
	SnapTolerance  float64
	SlopTolerance  float64 // max pointer distance from the recognized origin
	NoiseThreshold float64 // Update threshold during dragging

	// DoubleTapTarget is the ratio a double tap animates to; a negative
	// value disables the shortcut.
	DoubleTapTarget float64
	AnimDuration    time.Duration
	AnimSteps       int
	Easing          Easing

	// FallbackExtent substitutes for a non-positive or unbounded live
	// extent so ratio math stays finite.
	FallbackExtent float64

	// Haptic, when set, fires after each accepted keyboard adjustment.
	// Errors in it are the hook's problem; it is called and forgotten.
	Haptic func()
	// ScrollHold, when set, is acquired at drag start to freeze ancestor
	// scrolling; the returned func releases it at drag end.
	ScrollHold func() (release func())
	// Overlay, when set, is acquired at drag start to block stray pointer
	// interaction; the returned func removes it at drag end.
	Overlay func() (remove func())
}

// DefaultOptions returns the tuning used when the caller has no opinion.
func DefaultOptions() Options {
	return Options{
		Resizable:       true,
		Keyboard:        true,
		KeyboardStep:    0.01,
		PageStep:        0.1,
		SnapTolerance:   0.05,
		SlopTolerance:   4,
		NoiseThreshold:  DefaultThreshold,
		DoubleTapTarget: -1,
		AnimDuration:    200 * time.Millisecond,
		AnimSteps:       12,
		Easing:          EaseInOutCubic,
		FallbackExtent:  80,
	}
}

func (o Options) validate() error {
	if o.KeyboardStep < 0 || o.PageStep < 0 {
		return fmt.Errorf("%w: negative step", ErrOption)
	}
	if o.SnapTolerance < 0 || o.SlopTolerance < 0 || o.NoiseThreshold < 0 {
		return fmt.Errorf("%w: negative tolerance", ErrOption)
	}
	for _, p := range o.SnapPoints {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: snap point %v outside [0,1]", ErrOption, p)
		}
	}
	if o.DoubleTapTarget > 1 {
		return fmt.Errorf("%w: double-tap target %v above 1", ErrOption, o.DoubleTapTarget)
	}
	return nil
}

// pendingPointer is a pointer that pressed inside the hit region and may
// become the drag's owner.
type pendingPointer struct {
	id      int
	lastPos float64
}

// dragSession is the live state of one drag gesture.
type dragSession struct {
	pointerID     int
	startPos      float64
	startRatio    float64
	releaseScroll func()
	removeOverlay func()
}

// Controller is the per-divider interaction state machine. It consumes
// pointer and keyboard events, drives the Store through the constraint
// clamp, registers with the Router while dragging, and evaluates snapping
// when the gesture ends.
//
// A controller is confined to the event loop goroutine; it carries no
// lock. Feed it from the same goroutine that feeds the router.
type Controller struct {
	store    *Store
	router   *Router
	cfg      constraint.Config
	opts     Options
	token    Token
	adjuster *Adjuster

	phase   Phase
	pending []pendingPointer
	session *dragSession
	extent  float64
	closed  bool

	cb Callbacks
}

// NewController validates cfg and opts eagerly, claims the store, and
// wires the router (nil means SharedRouter). The controller owns its store
// attachment until Close; the store itself stays the caller's to close.
func NewController(store *Store, router *Router, cfg constraint.Config, opts Options) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("divider config: %w", err)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("divider config: %w", err)
	}
	if router == nil {
		router = SharedRouter()
	}
	if opts.FallbackExtent <= 0 {
		opts.FallbackExtent = DefaultOptions().FallbackExtent
	}
	token := NewToken()
	if err := store.Attach(token); err != nil {
		return nil, err
	}
	c := &Controller{
		store:  store,
		router: router,
		cfg:    cfg,
		opts:   opts,
		token:  token,
		extent: opts.FallbackExtent,
	}
	c.adjuster = newAdjuster(c)
	return c, nil
}

// SetCallbacks replaces the controller's outbound callbacks.
func (c *Controller) SetCallbacks(cb Callbacks) {
	c.cb = cb
}

// Store returns the ratio store the controller drives.
func (c *Controller) Store() *Store { return c.store }

// Adjuster returns the keyboard adjuster bound to this controller.
func (c *Controller) Adjuster() *Adjuster { return c.adjuster }

// Config returns the constraint config the controller clamps against.
func (c *Controller) Config() constraint.Config { return c.cfg }

// Phase returns the current interaction phase.
func (c *Controller) Phase() Phase { return c.phase }

// Dragging reports whether a drag session is live.
func (c *Controller) Dragging() bool { return c.phase == PhaseDragging }

// SetExtent feeds the current available main-axis extent, usually on every
// layout pass. Non-positive or non-finite extents fall back to the
// configured fallback so drag math stays defined.
func (c *Controller) SetExtent(extent float64) {
	if extent <= 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		extent = c.opts.FallbackExtent
	}
	c.extent = extent
}

// Extent returns the extent currently used for ratio math.
func (c *Controller) Extent() float64 { return c.extent }

// PointerDown records a pointer pressing inside the divider's hit region.
// The drag itself opens only when StartDrag recognizes the gesture.
func (c *Controller) PointerDown(id int, pos float64) {
	if c.closed || !c.opts.Resizable || c.phase == PhaseDragging {
		return
	}
	for i := range c.pending {
		if c.pending[i].id == id {
			c.pending[i].lastPos = pos
			return
		}
	}
	c.pending = append(c.pending, pendingPointer{id: id, lastPos: pos})
	c.phase = PhaseArmed
}

// PointerMove refreshes the last known position of an armed pointer. It
// never moves the ratio; only DragTo does.
func (c *Controller) PointerMove(id int, pos float64) {
	for i := range c.pending {
		if c.pending[i].id == id {
			c.pending[i].lastPos = pos
			return
		}
	}
}

// PointerUp discards the matching armed pointer. Unknown ids are no-ops.
func (c *Controller) PointerUp(id int) {
	c.prunePending(id)
}

// PointerCancel behaves like PointerUp for cancelled pointers.
func (c *Controller) PointerCancel(id int) {
	c.prunePending(id)
}

func (c *Controller) prunePending(id int) {
	for i := range c.pending {
		if c.pending[i].id == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			break
		}
	}
	if c.phase == PhaseArmed && len(c.pending) == 0 {
		c.phase = PhaseIdle
	}
}

// StartDrag opens a drag session at the recognized gesture origin. The
// owning pointer is the armed pointer nearest the origin within the slop
// tolerance, else the oldest armed pointer, else untracked.
func (c *Controller) StartDrag(origin float64) {
	if c.closed || !c.opts.Resizable || c.phase == PhaseDragging {
		return
	}
	// The gesture takes over from any in-flight animation; its remaining
	// ticks must not move a divider the user is holding.
	c.store.CancelAnimation()

	id := c.takePointer(origin)
	c.pending = nil
	c.phase = PhaseDragging

	sess := &dragSession{
		pointerID:  id,
		startPos:   origin,
		startRatio: c.store.Value(),
	}
	if c.opts.ScrollHold != nil {
		sess.releaseScroll = c.opts.ScrollHold()
	}
	if c.opts.Overlay != nil {
		sess.removeOverlay = c.opts.Overlay()
	}
	c.session = sess

	c.router.SetDragging(c, id)
	c.store.SetDragging(true)
	if c.cb.OnDragStart != nil {
		c.cb.OnDragStart(sess.startRatio)
	}
}

// takePointer picks the armed pointer that owns the gesture.
func (c *Controller) takePointer(origin float64) int {
	if len(c.pending) == 0 {
		return -1
	}
	best := -1
	bestDist := math.MaxFloat64
	for i, p := range c.pending {
		if d := (p.lastPos - origin) * (p.lastPos - origin); d < bestDist {
			best, bestDist = i, d
		}
	}
	if slop := c.opts.SlopTolerance; bestDist <= slop*slop {
		return c.pending[best].id
	}
	return c.pending[0].id
}

// DragTo moves the divider toward the pointer's main-axis position. The
// proposed ratio is the grab-time ratio plus the pointer delta over the
// live extent, clamped into the effective bounds recomputed for the
// current geometry.
func (c *Controller) DragTo(pos float64) {
	if c.phase != PhaseDragging || c.session == nil {
		return
	}
	// Losing the router registration means another drag superseded this
	// one and our release may have been swallowed with it; stop here
	// instead of fighting the new owner for the pointer.
	if d, _ := c.router.Dragging(); d != c {
		c.finishDrag(true)
		return
	}
	proposed := c.session.startRatio + (pos-c.session.startPos)/c.extent
	proposed = constraint.ClampRatio(proposed, c.extent, c.cfg)
	if c.store.Update(proposed, c.opts.NoiseThreshold) && c.cb.OnRatioChanged != nil {
		c.cb.OnRatioChanged(c.store.Value())
	}
}

// EndDrag closes the gesture: snap evaluation, hold release, router
// deregistration, OnDragEnd. Safe to call when no drag is live, so a
// forced stop racing the widget's own release handling stays harmless.
func (c *Controller) EndDrag() {
	c.finishDrag(true)
}

// CancelDrag closes the gesture through the same cleanup path as EndDrag.
func (c *Controller) CancelDrag() {
	c.finishDrag(true)
}

// ForceStop terminates an orphaned drag. The router invokes it when the
// owning pointer was released over some other surface. Idempotent.
func (c *Controller) ForceStop() {
	c.finishDrag(true)
}

// Tap reports a single tap on the handle.
func (c *Controller) Tap() {
	if c.closed {
		return
	}
	if c.cb.OnTap != nil {
		c.cb.OnTap(c.store.Value())
	}
}

// DoubleTap reports a double tap and, when a target is configured,
// animates the ratio to it through the effective bounds.
func (c *Controller) DoubleTap() {
	if c.closed {
		return
	}
	if c.cb.OnDoubleTap != nil {
		c.cb.OnDoubleTap(c.store.Value())
	}
	if t := c.opts.DoubleTapTarget; t >= 0 && c.opts.Resizable {
		target := constraint.ClampRatio(t, c.extent, c.cfg)
		c.store.AnimateTo(target, c.opts.AnimDuration, c.opts.Easing, c.opts.AnimSteps)
	}
}

// Close force-stops any live drag synchronously, without emitting
// OnDragEnd, then releases the store attachment. The dragging flag is
// guaranteed false afterward. Idempotent.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.finishDrag(false)
	c.pending = nil
	c.closed = true
	c.adjuster.disabled = true
	c.store.Detach(c.token)
}

// finishDrag is the single teardown path shared by end, cancel, forced
// stop, and close. A second invocation finds the phase already idle and
// does nothing.
func (c *Controller) finishDrag(emit bool) {
	if c.phase != PhaseDragging {
		if c.phase == PhaseArmed {
			c.phase = PhaseIdle
			c.pending = nil
		}
		return
	}
	c.phase = PhaseIdle
	sess := c.session
	c.session = nil

	if v, ok := Nearest(c.store.Value(), c.opts.SnapPoints, c.opts.SnapTolerance); ok {
		v = constraint.ClampRatio(v, c.extent, c.cfg)
		if c.store.Update(v, 0) && emit && c.cb.OnRatioChanged != nil {
			c.cb.OnRatioChanged(c.store.Value())
		}
	}

	if sess != nil {
		if sess.releaseScroll != nil {
			sess.releaseScroll()
		}
		if sess.removeOverlay != nil {
			sess.removeOverlay()
		}
	}

	c.store.SetDragging(false)
	c.router.ClearDragging(c)
	if emit && c.cb.OnDragEnd != nil {
		c.cb.OnDragEnd(c.store.Value())
	}
}
