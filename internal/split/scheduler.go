package split

import "time"

// Scheduler abstracts timer dispatch so animations can run against a
// deterministic clock in tests.
type Scheduler interface {
	// Schedule runs fn once after delay. The returned func cancels the
	// pending call; cancelling after fn already ran is harmless.
	Schedule(delay time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

// NewTimerScheduler returns the wall-clock scheduler backed by
// time.AfterFunc. Scheduled functions run on a timer goroutine.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
