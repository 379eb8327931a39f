package split

import (
	"sync"
	"time"
)

// MockScheduler is a deterministic Scheduler for tests. Scheduled functions
// run only when Advance moves the fake clock past their deadline, in
// deadline order. Functions scheduled from inside a running function are
// honored within the same Advance when their deadline falls in the window.
type MockScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int
	pending []*mockTimer
}

type mockTimer struct {
	id       int
	deadline time.Duration
	fn       func()
	canceled bool
}

// NewMockScheduler returns a scheduler whose clock starts at zero.
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// Schedule queues fn to run delay after the current fake time.
func (s *MockScheduler) Schedule(delay time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &mockTimer{id: s.nextID, deadline: s.now + delay, fn: fn}
	s.nextID++
	s.pending = append(s.pending, t)
	return func() {
		s.mu.Lock()
		t.canceled = true
		s.mu.Unlock()
	}
}

// Advance moves the clock forward by d, running due functions as their
// deadlines are reached.
func (s *MockScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		t := s.takeDue(target)
		if t == nil {
			break
		}
		s.mu.Lock()
		if t.deadline > s.now {
			s.now = t.deadline
		}
		s.mu.Unlock()
		t.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

// Pending reports how many scheduled functions are still waiting.
func (s *MockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.canceled {
			n++
		}
	}
	return n
}

// takeDue removes and returns the earliest non-canceled timer due at or
// before limit, dropping canceled timers along the way.
func (s *MockScheduler) takeDue(limit time.Duration) *mockTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.pending[:0]
	for _, t := range s.pending {
		if !t.canceled {
			kept = append(kept, t)
		}
	}
	s.pending = kept

	best := -1
	for i, t := range s.pending {
		if t.deadline > limit {
			continue
		}
		if best == -1 || t.deadline < s.pending[best].deadline ||
			(t.deadline == s.pending[best].deadline && t.id < s.pending[best].id) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	t := s.pending[best]
	s.pending = append(s.pending[:best], s.pending[best+1:]...)
	return t
}
