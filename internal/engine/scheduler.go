package engine

import (
	"errors"
	"time"
)

// ErrBusy is returned when a task is started while another one is still running.
var ErrBusy = errors.New("scheduler busy")

// Task is one unit of timed work. Step is called once per tick and returns true when the
// task has finished.
type Task interface {
	Step() bool
}

// TaskFunc adapts a function to Task.
type TaskFunc func() bool

func (f TaskFunc) Step() bool { return f() }

// Scheduler drives at most one Task at a time with at most one outstanding tick.
type Scheduler struct {
	clock    Clock
	task     Task
	name     string
	interval time.Duration
	done     func()
	timer    Timer
	gen      uint64
}

func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// Start runs task every interval until it reports completion, then calls done (which may
// start the next task).
func (s *Scheduler) Start(name string, task Task, interval time.Duration, done func()) error {
	if s.task != nil {
		return ErrBusy
	}
	s.task = task
	s.name = name
	s.interval = interval
	s.done = done
	s.gen++
	s.arm()
	return nil
}

// Cancel stops the running task without calling its completion callback.
func (s *Scheduler) Cancel() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = nil
	s.task = nil
	s.name = ""
	s.done = nil
	s.gen++
}

// Busy reports whether a task is running.
func (s *Scheduler) Busy() bool { return s.task != nil }

// Running returns the name of the running task, or "" when idle.
func (s *Scheduler) Running() string { return s.name }

func (s *Scheduler) arm() {
	gen := s.gen
	s.timer = s.clock.AfterFunc(s.interval, func() { s.tick(gen) })
}

func (s *Scheduler) tick(gen uint64) {
	// A stale tick from a cancelled task may still be queued on the UI goroutine.
	if gen != s.gen || s.task == nil {
		return
	}
	s.timer = nil
	finished := s.task.Step()
	if gen != s.gen {
		return
	}
	if !finished {
		s.arm()
		return
	}
	done := s.done
	s.task = nil
	s.name = ""
	s.done = nil
	s.gen++
	if done != nil {
		done()
	}
}
