package state

import "log"

// Class is the outcome of classifying a finished gesture.
type Class int

const (
	Discard Class = iota
	Top
	Bottom
)

func (c Class) String() string {
	switch c {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "discard"
}

// DefaultTolerance is the per-axis distance within which an endpoint counts as touching an anchor.
const DefaultTolerance float32 = 60

// MatchState records which comparison lines have been drawn.
type MatchState struct {
	TopFound    bool
	BottomFound bool
}

// Both reports whether both lines have been found.
func (m MatchState) Both() bool { return m.TopFound && m.BottomFound }

// Mark records a Top or Bottom classification and reports whether it changed the state.
func (m *MatchState) Mark(c Class) bool {
	switch c {
	case Top:
		if m.TopFound {
			return false
		}
		m.TopFound = true
	case Bottom:
		if m.BottomFound {
			return false
		}
		m.BottomFound = true
	default:
		return false
	}
	log.Printf("[MATCH] %s line found (top=%t bottom=%t)", c, m.TopFound, m.BottomFound)
	return true
}

func (m *MatchState) Reset() { *m = MatchState{} }

// Classify decides whether seg connects the two top anchors, the two bottom anchors, or neither.
// Endpoints may be in either order. A line already found never matches again, and Top wins over
// Bottom when both would apply.
func Classify(seg Segment, anchors AnchorSet, match MatchState, tol float32) Class {
	if !match.TopFound && connects(seg, anchors.StackOneTop, anchors.StackTwoTop, tol) {
		return Top
	}
	if !match.BottomFound && connects(seg, anchors.StackOneBottom, anchors.StackTwoBottom, tol) {
		return Bottom
	}
	return Discard
}

func connects(seg Segment, one, two Anchor, tol float32) bool {
	if one.Near(seg.Start, tol) && two.Near(seg.End, tol) {
		return true
	}
	return one.Near(seg.End, tol) && two.Near(seg.Start, tol)
}

// Orient returns seg running from the stack-one anchor toward the stack-two anchor.
func Orient(seg Segment, c Class, anchors AnchorSet, tol float32) Segment {
	one := anchors.StackOneTop
	if c == Bottom {
		one = anchors.StackOneBottom
	}
	if !one.Near(seg.Start, tol) && one.Near(seg.End, tol) {
		return seg.Reversed()
	}
	return seg
}
