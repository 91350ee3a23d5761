package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"CompareBoard/internal/engine"
	"CompareBoard/internal/state"
)

// lineSurface is an engine.Surface that turns each stroke into a canvas.Line.
type lineSurface struct {
	outer color.NRGBA
	inner color.NRGBA
	size  state.Size
	lines []*canvas.Line
}

var _ engine.Surface = (*lineSurface)(nil)

func (s *lineSurface) Resize(size state.Size) { s.size = size }

func (s *lineSurface) Clear() { s.lines = s.lines[:0] }

func (s *lineSurface) DrawStroke(st engine.RenderStroke) {
	c := s.outer
	if st.Color == state.ColorInner {
		c = s.inner
	}
	line := canvas.NewLine(fade(c, st.Opacity))
	line.StrokeWidth = st.Width
	line.Position1 = fyne.NewPos(st.Start.X, st.Start.Y)
	line.Position2 = fyne.NewPos(st.End.X, st.End.Y)
	s.lines = append(s.lines, line)
}

func (s *lineSurface) objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(s.lines))
	for _, l := range s.lines {
		objects = append(objects, l)
	}
	return objects
}

// fade scales the alpha channel of c by opacity.
func fade(c color.NRGBA, opacity float32) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float32(c.A)*opacity + 0.5)
	return c
}
