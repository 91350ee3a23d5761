package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClockFiresInOrder(t *testing.T) {
	c := NewManualClock()
	var got []string
	c.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(20*time.Millisecond, func() { got = append(got, "c") })

	c.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 2, c.Pending())

	c.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 20*time.Millisecond, c.Elapsed())
}

func TestManualClockChainedTimers(t *testing.T) {
	c := NewManualClock()
	count := 0
	var tick func()
	tick = func() {
		count++
		c.AfterFunc(10*time.Millisecond, tick)
	}
	c.AfterFunc(10*time.Millisecond, tick)

	c.Advance(55 * time.Millisecond)
	assert.Equal(t, 5, count)
	assert.Equal(t, 1, c.Pending())
}

func TestManualClockStop(t *testing.T) {
	c := NewManualClock()
	fired := false
	timer := c.AfterFunc(10*time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	c.Advance(time.Second)
	assert.False(t, fired)
}
