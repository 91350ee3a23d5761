package engine

import "CompareBoard/internal/state"

// GesturePhase is the lifecycle of a single pointer or touch gesture.
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	GestureActive
)

// Gesture tracks the one open pointer session. Updates and ends outside an open session are
// ignored.
type Gesture struct {
	phase GesturePhase
	start state.Point
	last  state.Point
}

func (g *Gesture) Phase() GesturePhase { return g.phase }

func (g *Gesture) Active() bool { return g.phase == GestureActive }

// Begin opens a session at p. It reports false if one is already open.
func (g *Gesture) Begin(p state.Point) bool {
	if g.phase != GestureIdle {
		return false
	}
	g.phase = GestureActive
	g.start, g.last = p, p
	return true
}

// Update moves the end of the in-progress segment.
func (g *Gesture) Update(p state.Point) bool {
	if g.phase != GestureActive {
		return false
	}
	g.last = p
	return true
}

// End closes the session at p and returns the drawn segment.
func (g *Gesture) End(p state.Point) (state.Segment, bool) {
	if g.phase != GestureActive {
		return state.Segment{}, false
	}
	g.last = p
	g.phase = GestureIdle
	return state.Segment{Start: g.start, End: p}, true
}

// Leave closes the session at the last known position, as when the pointer exits the surface.
func (g *Gesture) Leave() (state.Segment, bool) {
	return g.End(g.last)
}

// Cancel drops the session without producing a segment.
func (g *Gesture) Cancel() {
	g.phase = GestureIdle
}

// Segment returns the in-progress segment while a session is open.
func (g *Gesture) Segment() (state.Segment, bool) {
	if g.phase != GestureActive {
		return state.Segment{}, false
	}
	return state.Segment{Start: g.start, End: g.last}, true
}
