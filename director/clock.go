package director

import (
	"sync"
	"time"
)

// Task is a cancelable scheduled callback
// Stop is idempotent and safe to call after the task has fired
type Task interface {
	Stop()
}

// Clock abstracts time and timer scheduling so the lifecycle can be driven
// by virtual time in tests
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// AfterFunc schedules fn once after d
	AfterFunc(d time.Duration, fn func()) Task

	// TickFunc schedules fn repeatedly every d until stopped
	TickFunc(d time.Duration, fn func()) Task

	// Sleep blocks for d
	Sleep(d time.Duration)
}

// SystemClock is the wall-clock implementation
type SystemClock struct{}

// NewSystemClock creates a wall-clock backed Clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (*SystemClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn once after d
func (*SystemClock) AfterFunc(d time.Duration, fn func()) Task {
	return &systemTimer{t: time.AfterFunc(d, fn)}
}

// TickFunc schedules fn every d on a dedicated goroutine
func (*SystemClock) TickFunc(d time.Duration, fn func()) Task {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	return &systemTicker{ticker: ticker, done: done}
}

// Sleep blocks for d
func (*SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

type systemTimer struct {
	t *time.Timer
}

func (s *systemTimer) Stop() {
	s.t.Stop()
}

type systemTicker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (s *systemTicker) Stop() {
	s.once.Do(func() {
		s.ticker.Stop()
		close(s.done)
	})
}
