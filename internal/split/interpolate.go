package split

import "time"

// animation tracks one in-flight AnimateTo. The store holds at most one;
// identity comparison against s.anim is how stale ticks detect that they
// were superseded.
type animation struct {
	cancel func()
	done   chan struct{}
}

// Animating reports whether an animated transition is in flight.
func (s *Store) Animating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anim != nil
}

// CancelAnimation stops any in-flight animated transition at its current
// value and resolves its done channel. User gestures call this so stale
// animation ticks never compete with the pointer or keyboard.
func (s *Store) CancelAnimation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAnimationLocked()
}

// AnimateTo moves the ratio to target (clamped to [0,1]) over duration,
// committing steps evenly time-spaced intermediate values shaped by easing
// and landing exactly on target at the final tick. A nil easing means
// linear. Non-positive duration or steps jumps immediately. Starting a new
// animation cancels any in-flight one and resolves its done channel right
// away; the returned channel closes once this animation's final value is
// committed (or it is cancelled in turn).
func (s *Store) AnimateTo(target float64, duration time.Duration, easing Easing, steps int) <-chan struct{} {
	done := make(chan struct{})
	target = clamp01(target)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(done)
		return done
	}
	s.cancelAnimationLocked()

	if duration <= 0 || steps <= 0 {
		s.mu.Unlock()
		s.Update(target, 0)
		close(done)
		return done
	}

	if easing == nil {
		easing = EaseLinear
	}
	anim := &animation{done: done}
	s.anim = anim
	start := s.value
	interval := duration / time.Duration(steps)
	anim.cancel = s.sched.Schedule(interval, s.animTick(anim, start, target, easing, interval, steps, 1))
	s.mu.Unlock()
	return done
}

// animTick builds the timer func committing tick i of steps. Each tick
// re-checks that its animation still owns the store before touching it, so
// a tick racing a cancel is a no-op.
func (s *Store) animTick(anim *animation, start, target float64, easing Easing, interval time.Duration, steps, i int) func() {
	return func() {
		v := target
		if i < steps {
			v = start + (target-start)*easing(float64(i)/float64(steps))
		}

		s.mu.Lock()
		if s.anim != anim {
			s.mu.Unlock()
			return
		}
		final := i >= steps
		if final {
			s.anim = nil
		}
		s.mu.Unlock()

		s.Update(v, 0)

		if final {
			close(anim.done)
			return
		}
		s.mu.Lock()
		if s.anim == anim {
			anim.cancel = s.sched.Schedule(interval, s.animTick(anim, start, target, easing, interval, steps, i+1))
		}
		s.mu.Unlock()
	}
}

// cancelAnimationLocked stops the in-flight animation, if any, and
// resolves its done channel immediately. Caller holds s.mu.
func (s *Store) cancelAnimationLocked() {
	if s.anim == nil {
		return
	}
	if s.anim.cancel != nil {
		s.anim.cancel()
	}
	close(s.anim.done)
	s.anim = nil
}
