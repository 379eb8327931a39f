// Package split implements the interaction core of a draggable two-pane
// divider: an observable ratio store with animated transitions, a drag
// state machine fed by pointer events, keyboard adjustment, snapping, and
// a process-wide router that terminates drags whose pointer release was
// swallowed elsewhere. Geometry math lives in the constraint subpackage.
package split

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// DefaultThreshold is the Update threshold used while dragging to suppress
// sub-cell notification noise.
const DefaultThreshold = 0.001

// ErrAttached is returned when a store already claimed by one owner is
// attached under a different token.
var ErrAttached = errors.New("ratio store already attached to another owner")

// Token identifies an attachment owner. Tokens are opaque and compared by
// value; obtain one from NewToken.
type Token uint64

var tokenCounter atomic.Uint64

// NewToken issues a fresh attachment token.
func NewToken() Token {
	return Token(tokenCounter.Add(1))
}

// binding is one registered observer. Unbinding flips active instead of
// removing the entry so unbind stays safe during notification.
type binding[T any] struct {
	fn     func(T)
	active bool
}

// Store holds the divider ratio, a float in [0,1] giving the start pane's
// share of the available extent. All mutation funnels through Update, so
// observers always see clamped values, exactly once per applied change, in
// registration order. A small lock keeps mutation and observer snapshots
// atomic; observer callbacks run outside it.
type Store struct {
	mu       sync.Mutex
	value    float64
	dragging bool
	valueObs []*binding[float64]
	dragObs  []*binding[bool]

	sched Scheduler
	anim  *animation

	owner    Token
	attached bool
	closed   bool
}

// NewStore creates a store with the given initial ratio, clamped to [0,1],
// animating on the wall clock.
func NewStore(initial float64) *Store {
	return NewStoreWithScheduler(initial, NewTimerScheduler())
}

// NewStoreWithScheduler creates a store that drives animations through the
// given scheduler. Tests pass a MockScheduler and advance time manually.
func NewStoreWithScheduler(initial float64, sched Scheduler) *Store {
	return &Store{value: clamp01(initial), sched: sched}
}

// Value returns the current ratio.
func (s *Store) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Dragging reports whether a drag is in progress.
func (s *Store) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragging
}

// Update clamps v to [0,1] and applies it when it differs from the current
// value by more than threshold. Reports whether the value changed. A zero
// threshold still filters exact duplicates, so observers never see the
// same value twice in a row.
func (s *Store) Update(v, threshold float64) bool {
	s.mu.Lock()
	if s.closed || math.IsNaN(v) {
		s.mu.Unlock()
		return false
	}
	v = clamp01(v)
	if math.Abs(v-s.value) <= threshold {
		s.mu.Unlock()
		return false
	}
	s.value = v
	obs := collect(&s.valueObs)
	s.mu.Unlock()

	for _, fn := range obs {
		fn(v)
	}
	return true
}

// Reset sets the ratio unconditionally, bypassing any noise threshold.
// Observers are notified if the value actually changed.
func (s *Store) Reset(v float64) {
	s.Update(v, 0)
}

// SetDragging toggles the observable dragging flag. Its observers are
// independent of ratio observers.
func (s *Store) SetDragging(d bool) {
	s.mu.Lock()
	if s.closed || s.dragging == d {
		s.mu.Unlock()
		return
	}
	s.dragging = d
	obs := collect(&s.dragObs)
	s.mu.Unlock()

	for _, fn := range obs {
		fn(d)
	}
}

// OnChange registers fn to run after each applied ratio change. The
// returned func unregisters it; calling it more than once is harmless.
func (s *Store) OnChange(fn func(float64)) (unbind func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bind(&s.mu, &s.valueObs, fn)
}

// OnDraggingChange registers fn to run when the dragging flag flips.
func (s *Store) OnDraggingChange(fn func(bool)) (unbind func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bind(&s.mu, &s.dragObs, fn)
}

// Attach claims the store for the owner identified by t. A store has at
// most one owner: attaching under a different token while claimed returns
// ErrAttached. Re-attaching the same token is a no-op.
func (s *Store) Attach(t Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached && s.owner != t {
		return fmt.Errorf("attach: %w", ErrAttached)
	}
	s.attached = true
	s.owner = t
	return nil
}

// Detach releases the store if t is the current owner. Any other token is
// ignored.
func (s *Store) Detach(t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached && s.owner == t {
		s.attached = false
	}
}

// Close cancels any running animation, resolving its done channel, drops
// all observers, and makes further mutation a no-op. Idempotent.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.dragging = false
	s.cancelAnimationLocked()
	s.valueObs = nil
	s.dragObs = nil
	s.attached = false
}

// bind appends a new observer and returns its unbind func. Caller holds
// mu; the unbind closure re-acquires it when invoked.
func bind[T any](mu *sync.Mutex, list *[]*binding[T], fn func(T)) func() {
	b := &binding[T]{fn: fn, active: true}
	*list = append(*list, b)
	return func() {
		mu.Lock()
		b.active = false
		mu.Unlock()
	}
}

// collect snapshots the active observer funcs in registration order,
// pruning unbound entries. Caller holds the store lock.
func collect[T any](list *[]*binding[T]) []func(T) {
	kept := (*list)[:0]
	fns := make([]func(T), 0, len(*list))
	for _, b := range *list {
		if b.active {
			kept = append(kept, b)
			fns = append(fns, b.fn)
		}
	}
	*list = kept
	return fns
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
