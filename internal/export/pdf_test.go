package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CompareBoard/internal/state"
)

func TestCaption(t *testing.T) {
	assert.Equal(t, "5 > 2", Caption(5, 2))
	assert.Equal(t, "2 < 5", Caption(2, 5))
	assert.Equal(t, "3 = 3", Caption(3, 3))
}

func TestGlyphFrame(t *testing.T) {
	size := state.Size{Width: 800, Height: 500}
	f := GlyphFrame(state.GlyphLessThan, size, 0.3, state.DefaultStrokeStyle)
	require.Len(t, f, 4)

	target := state.TargetFor(state.GlyphLessThan, size, 0.3)
	assert.Equal(t, target.Top, f[0].Segment)
	assert.Equal(t, target.Top, f[1].Segment)
	assert.Equal(t, target.Bottom, f[2].Segment)
	assert.Equal(t, state.ColorOuter, f[0].Color)
	assert.Equal(t, state.ColorInner, f[1].Color)
	for _, s := range f {
		assert.Equal(t, float32(1), s.Opacity)
	}
}

func TestWorksheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Worksheet(&buf, 3, 7, DefaultOptions()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestSurfaceFitsPage(t *testing.T) {
	s := newPDFSurface(nil, DefaultOptions())
	s.Resize(state.Size{Width: 800, Height: 500})

	x0, y0 := s.toPage(state.Point{})
	x1, y1 := s.toPage(state.Point{X: 800, Y: 500})
	assert.GreaterOrEqual(t, x0, margin)
	assert.GreaterOrEqual(t, y0, margin)
	assert.LessOrEqual(t, x1, pageWidth-margin+1e-9)
	assert.LessOrEqual(t, y1, pageHeight-margin-captionH+1e-9)
}
