package state

import "math"

type Point struct{ X, Y float32 }

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float32) Point {
	if t >= 1 {
		return q
	}
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Near reports whether q lies within tol of p on both axes independently.
func (p Point) Near(q Point, tol float32) bool {
	return math.Abs(float64(p.X-q.X)) < float64(tol) && math.Abs(float64(p.Y-q.Y)) < float64(tol)
}

type Size struct{ Width, Height float32 }

func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Segment is a straight line between two surface-local points.
type Segment struct {
	Start, End Point
}

func (s Segment) Reversed() Segment { return Segment{Start: s.End, End: s.Start} }

// Lerp interpolates both endpoints toward to.
func (s Segment) Lerp(to Segment, t float32) Segment {
	return Segment{Start: s.Start.Lerp(to.Start, t), End: s.End.Lerp(to.End, t)}
}

type StrokeColor int

const (
	ColorOuter StrokeColor = iota
	ColorInner
)

func (c StrokeColor) String() string {
	if c == ColorInner {
		return "inner"
	}
	return "outer"
}

type Stroke struct {
	Segment
	Color StrokeColor
	Width float32
}

// StrokeStyle holds the widths used for the two strokes of a line.
type StrokeStyle struct {
	OuterWidth float32
	InnerWidth float32
}

var DefaultStrokeStyle = StrokeStyle{OuterWidth: 8, InnerWidth: 4}

// Line is one user-visible comparison line, rendered as an outer and an inner stroke.
type Line struct {
	ID      string
	Segment Segment
	Style   StrokeStyle
}

// Strokes returns the outer stroke followed by the inner one.
func (l Line) Strokes() [2]Stroke {
	return [2]Stroke{
		{Segment: l.Segment, Color: ColorOuter, Width: l.Style.OuterWidth},
		{Segment: l.Segment, Color: ColorInner, Width: l.Style.InnerWidth},
	}
}

// Anchor is a live screen coordinate that may not be known before the first layout pass.
type Anchor struct {
	Pos Point
	Set bool
}

func AnchorAt(x, y float32) Anchor { return Anchor{Pos: Point{X: x, Y: y}, Set: true} }

// Near reports whether p is within tol of a known anchor.
func (a Anchor) Near(p Point, tol float32) bool {
	return a.Set && a.Pos.Near(p, tol)
}

type AnchorSet struct {
	StackOneTop    Anchor
	StackOneBottom Anchor
	StackTwoTop    Anchor
	StackTwoBottom Anchor
}

type Mode int

const (
	ModeNone Mode = iota
	ModeAddRemove
	ModeDrawCompare
)

func (m Mode) String() string {
	switch m {
	case ModeAddRemove:
		return "addRemove"
	case ModeDrawCompare:
		return "drawCompare"
	}
	return "none"
}
