package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countdown(n int, steps *int) Task {
	return TaskFunc(func() bool {
		*steps++
		return *steps >= n
	})
}

func TestSchedulerRunsTaskToCompletion(t *testing.T) {
	c := NewManualClock()
	s := NewScheduler(c)
	steps, done := 0, 0

	require.NoError(t, s.Start("count", countdown(3, &steps), 10*time.Millisecond, func() { done++ }))
	assert.True(t, s.Busy())
	assert.Equal(t, "count", s.Running())
	assert.Equal(t, 1, c.Pending(), "one outstanding tick")

	c.Advance(20 * time.Millisecond)
	assert.Equal(t, 2, steps)
	assert.Equal(t, 0, done)
	assert.Equal(t, 1, c.Pending())

	c.Advance(10 * time.Millisecond)
	assert.Equal(t, 3, steps)
	assert.Equal(t, 1, done)
	assert.False(t, s.Busy())
	assert.Equal(t, 0, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, 3, steps, "no ticks after completion")
}

func TestSchedulerRejectsSecondTask(t *testing.T) {
	s := NewScheduler(NewManualClock())
	steps := 0
	require.NoError(t, s.Start("a", countdown(5, &steps), time.Millisecond, nil))

	err := s.Start("b", countdown(5, &steps), time.Millisecond, nil)
	assert.True(t, errors.Is(err, ErrBusy))
	assert.Equal(t, "a", s.Running())
}

func TestSchedulerCancel(t *testing.T) {
	c := NewManualClock()
	s := NewScheduler(c)
	steps, done := 0, 0
	require.NoError(t, s.Start("a", countdown(5, &steps), 10*time.Millisecond, func() { done++ }))

	c.Advance(10 * time.Millisecond)
	s.Cancel()
	c.Advance(time.Second)

	assert.Equal(t, 1, steps)
	assert.Equal(t, 0, done)
	assert.False(t, s.Busy())
	assert.Equal(t, 0, c.Pending())
}

func TestSchedulerChainsFromCompletion(t *testing.T) {
	c := NewManualClock()
	s := NewScheduler(c)
	first, second := 0, 0
	finished := false

	require.NoError(t, s.Start("first", countdown(2, &first), 10*time.Millisecond, func() {
		require.NoError(t, s.Start("second", countdown(2, &second), 50*time.Millisecond, func() { finished = true }))
	}))

	c.Advance(20 * time.Millisecond)
	assert.Equal(t, "second", s.Running())
	c.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, second)
	assert.True(t, finished)
}

func TestSchedulerIgnoresStaleTick(t *testing.T) {
	// A system clock may deliver a tick after Stop; the generation check must drop it.
	s := NewScheduler(NewManualClock())
	steps := 0
	require.NoError(t, s.Start("a", countdown(5, &steps), time.Millisecond, nil))
	gen := s.gen
	s.Cancel()

	s.tick(gen)
	assert.Equal(t, 0, steps)
}
