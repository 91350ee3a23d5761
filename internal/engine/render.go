package engine

import "CompareBoard/internal/state"

// RenderStroke is a stroke as it should appear in the current frame.
type RenderStroke struct {
	state.Stroke
	Opacity float32
}

// Surface is a 2D drawing target.
type Surface interface {
	Resize(size state.Size)
	Clear()
	DrawStroke(s RenderStroke)
}

// Frame is the ordered list of strokes to paint, back to front.
type Frame []RenderStroke

// Paint clears surface and draws f onto it.
func Paint(surface Surface, f Frame) {
	surface.Clear()
	for _, s := range f {
		surface.DrawStroke(s)
	}
}

func appendLine(f Frame, seg state.Segment, style state.StrokeStyle, opacity float32) Frame {
	for _, s := range (state.Line{Segment: seg, Style: style}).Strokes() {
		f = append(f, RenderStroke{Stroke: s, Opacity: opacity})
	}
	return f
}

// Recorder is a Surface that keeps what was drawn since the last Clear.
type Recorder struct {
	Size    state.Size
	Strokes []RenderStroke
	Clears  int
}

func (r *Recorder) Resize(size state.Size) { r.Size = size }

func (r *Recorder) Clear() {
	r.Strokes = r.Strokes[:0]
	r.Clears++
}

func (r *Recorder) DrawStroke(s RenderStroke) { r.Strokes = append(r.Strokes, s) }
