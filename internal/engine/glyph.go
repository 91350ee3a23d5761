package engine

import (
	"time"

	"CompareBoard/internal/state"
)

const (
	DefaultFrames        = 60
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultSettle        = 3 * time.Second
)

// Phase is the glyph animator's state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnimating
	PhaseSettling
	PhaseFadingOut
)

func (p Phase) String() string {
	switch p {
	case PhaseAnimating:
		return "animating"
	case PhaseSettling:
		return "settling"
	case PhaseFadingOut:
		return "fading"
	}
	return "idle"
}

// Idle is reachable from every phase through an explicit reset.
var phaseTransitions = map[Phase][]Phase{
	PhaseIdle:      {PhaseAnimating},
	PhaseAnimating: {PhaseSettling, PhaseIdle},
	PhaseSettling:  {PhaseFadingOut, PhaseIdle},
	PhaseFadingOut: {PhaseIdle},
}

// CanEnter reports whether the animator may move from p to next.
func (p Phase) CanEnter(next Phase) bool {
	for _, n := range phaseTransitions[p] {
		if n == next {
			return true
		}
	}
	return false
}

// Morph interpolates the stored top and bottom lines toward a glyph target, one frame per Step.
type Morph struct {
	store  *state.StrokeStore
	from   state.GlyphTarget
	to     state.GlyphTarget
	frame  int
	frames int
}

// NewMorph captures the current geometry of the stored lines as the starting point.
func NewMorph(store *state.StrokeStore, to state.GlyphTarget, frames int) *Morph {
	if frames <= 0 {
		frames = DefaultFrames
	}
	top, _ := store.Line(state.Top)
	bot, _ := store.Line(state.Bottom)
	return &Morph{
		store:  store,
		from:   state.GlyphTarget{Top: top.Segment, Bottom: bot.Segment},
		to:     to,
		frames: frames,
	}
}

// Progress returns t in [0, 1].
func (m *Morph) Progress() float32 {
	return float32(m.frame) / float32(m.frames)
}

func (m *Morph) Step() bool {
	if m.frame < m.frames {
		m.frame++
	}
	t := m.Progress()
	m.store.Replace(state.Top, m.from.Top.Lerp(m.to.Top, t))
	m.store.Replace(state.Bottom, m.from.Bottom.Lerp(m.to.Bottom, t))
	return m.frame >= m.frames
}
