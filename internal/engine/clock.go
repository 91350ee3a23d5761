package engine

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Callbacks must run on the goroutine that owns the engine.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock uses real timers and hands each callback to Dispatch, which is expected to
// move it onto the UI goroutine (fyne.Do in the app).
type SystemClock struct {
	Dispatch func(func())
}

func (c SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	if c.Dispatch == nil {
		return time.AfterFunc(d, f)
	}
	return time.AfterFunc(d, func() { c.Dispatch(f) })
}

// ManualClock is a Clock for tests: nothing fires until Advance is called.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	clock *ManualClock
	at    time.Duration
	seq   uint64
	f     func()
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, at: c.now + d, seq: c.seq, f: f}
	c.pending = append(c.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Elapsed returns the virtual time advanced so far.
func (c *ManualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of timers waiting to fire.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Advance moves virtual time forward by d, firing due timers in deadline order. Timers
// scheduled by a callback fire in the same call if they fall due within d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	for {
		sort.Slice(c.pending, func(i, j int) bool {
			if c.pending[i].at == c.pending[j].at {
				return c.pending[i].seq < c.pending[j].seq
			}
			return c.pending[i].at < c.pending[j].at
		})
		if len(c.pending) == 0 || c.pending[0].at > target {
			break
		}
		next := c.pending[0]
		c.pending = c.pending[1:]
		c.now = next.at
		c.mu.Unlock()
		next.f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}
