package engine

import "time"

const (
	DefaultFadeStep     = 0.05
	DefaultFadeInterval = 30 * time.Millisecond
)

type fadeTarget int

const (
	fadeNone fadeTarget = iota
	// a discarded line; committed strokes stay opaque
	fadeTransient
	// every stroke, after a comparison
	fadeAll
)

// Fade ramps opacity from 1 down to 0 by a fixed step per tick.
type Fade struct {
	step    float64
	ticks   int
	opacity float32
}

func NewFade(step float64) *Fade {
	if step <= 0 {
		step = DefaultFadeStep
	}
	return &Fade{step: step, opacity: 1}
}

func (f *Fade) Opacity() float32 { return f.opacity }

// Step lowers the opacity and reports whether it has reached zero.
func (f *Fade) Step() bool {
	f.ticks++
	// Counting ticks keeps 1 - n*step from stalling just above zero.
	remaining := 1 - float64(f.ticks)*f.step
	if remaining <= 1e-9 {
		f.opacity = 0
		return true
	}
	f.opacity = float32(remaining)
	return false
}
