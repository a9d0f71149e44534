package director

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing
// Advance moves virtual time forward, firing due tasks synchronously in
// chronological order; callbacks run without the clock lock held so they
// may freely schedule or stop further tasks
type MockClock struct {
	mu    sync.Mutex
	now   time.Time
	tasks []*mockTask
	seq   int
}

type mockTask struct {
	at       time.Time
	interval time.Duration // 0 for one-shot
	fn       func()
	stopped  bool
	seq      int
}

// NewMockClock creates a mock clock starting at the given time
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules fn once at now+d in virtual time
func (c *MockClock) AfterFunc(d time.Duration, fn func()) Task {
	return c.schedule(d, 0, fn)
}

// TickFunc schedules fn every d in virtual time
func (c *MockClock) TickFunc(d time.Duration, fn func()) Task {
	return c.schedule(d, d, fn)
}

// Sleep advances virtual time; the caller never actually blocks
func (c *MockClock) Sleep(d time.Duration) {
	c.Advance(d)
}

// Advance moves time forward by d, firing every task due on the way
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)

	for {
		next := c.nextDueLocked(target)
		if next == nil {
			break
		}
		c.now = next.at
		if next.interval > 0 {
			next.at = next.at.Add(next.interval)
		} else {
			next.stopped = true
		}
		fn := next.fn

		// Fire outside the lock: tasks may re-enter the clock
		c.mu.Unlock()
		fn()
		c.mu.Lock()
	}

	c.now = target
	c.compactLocked()
	c.mu.Unlock()
}

func (c *MockClock) schedule(d, interval time.Duration, fn func()) Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &mockTask{
		at:       c.now.Add(d),
		interval: interval,
		fn:       fn,
		seq:      c.seq,
	}
	c.tasks = append(c.tasks, t)
	return &mockTaskHandle{clock: c, task: t}
}

// nextDueLocked returns the earliest unstopped task at or before target,
// breaking ties by scheduling order
func (c *MockClock) nextDueLocked(target time.Time) *mockTask {
	var next *mockTask
	for _, t := range c.tasks {
		if t.stopped || t.at.After(target) {
			continue
		}
		if next == nil || t.at.Before(next.at) || (t.at.Equal(next.at) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (c *MockClock) compactLocked() {
	live := c.tasks[:0]
	for _, t := range c.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.tasks = live
}

type mockTaskHandle struct {
	clock *MockClock
	task  *mockTask
}

func (h *mockTaskHandle) Stop() {
	h.clock.mu.Lock()
	defer h.clock.mu.Unlock()
	h.task.stopped = true
}
