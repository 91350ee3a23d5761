package state

// Glyph is the comparison symbol the two lines morph into.
type Glyph int

const (
	GlyphEqual Glyph = iota
	GlyphGreaterThan
	GlyphLessThan
)

func (g Glyph) String() string {
	switch g {
	case GlyphGreaterThan:
		return ">"
	case GlyphLessThan:
		return "<"
	}
	return "="
}

// GlyphFor compares the two stack sizes.
func GlyphFor(one, two int) Glyph {
	switch {
	case one > two:
		return GlyphGreaterThan
	case one < two:
		return GlyphLessThan
	}
	return GlyphEqual
}

// DefaultGlyphScale is the glyph size as a fraction of the smaller surface dimension.
const DefaultGlyphScale float32 = 0.3

// GlyphTarget is the geometry of a glyph's two strokes. Both segments run left to right so
// that lines stored from stack one to stack two morph without crossing over.
type GlyphTarget struct {
	Top    Segment
	Bottom Segment
}

// TargetFor lays out g centred on a surface of the given size.
func TargetFor(g Glyph, size Size, scale float32) GlyphTarget {
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	half := side * scale / 2
	cx, cy := size.Width/2, size.Height/2
	left, right := cx-half, cx+half

	switch g {
	case GlyphGreaterThan:
		tip := Point{X: right, Y: cy}
		return GlyphTarget{
			Top:    Segment{Start: Point{X: left, Y: cy - half}, End: tip},
			Bottom: Segment{Start: Point{X: left, Y: cy + half}, End: tip},
		}
	case GlyphLessThan:
		tip := Point{X: left, Y: cy}
		return GlyphTarget{
			Top:    Segment{Start: tip, End: Point{X: right, Y: cy - half}},
			Bottom: Segment{Start: tip, End: Point{X: right, Y: cy + half}},
		}
	}
	gap := half / 2
	return GlyphTarget{
		Top:    Segment{Start: Point{X: left, Y: cy - gap}, End: Point{X: right, Y: cy - gap}},
		Bottom: Segment{Start: Point{X: left, Y: cy + gap}, End: Point{X: right, Y: cy + gap}},
	}
}
