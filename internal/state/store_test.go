package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrokeStoreCommit(t *testing.T) {
	s := NewStrokeStore(DefaultStrokeStyle)
	require.Equal(t, 0, s.Len())

	top, ok := s.Commit(Top, seg(100, 100, 400, 100))
	require.True(t, ok)
	assert.NotEmpty(t, top.ID)
	assert.Equal(t, 2, s.Len())

	_, ok = s.Commit(Top, seg(0, 0, 1, 1))
	assert.False(t, ok, "top slot is taken")
	_, ok = s.Commit(Discard, seg(0, 0, 1, 1))
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())

	_, ok = s.Commit(Bottom, seg(100, 400, 400, 380))
	require.True(t, ok)
	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Full())

	strokes := s.Strokes()
	require.Len(t, strokes, 4)
	assert.Equal(t, ColorOuter, strokes[0].Color)
	assert.Equal(t, float32(8), strokes[0].Width)
	assert.Equal(t, ColorInner, strokes[1].Color)
	assert.Equal(t, float32(4), strokes[1].Width)
	assert.Equal(t, strokes[0].Segment, strokes[1].Segment)
	assert.Equal(t, seg(100, 400, 400, 380), strokes[2].Segment)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Full())
	_, ok = s.Commit(Top, seg(100, 100, 400, 100))
	assert.True(t, ok, "slots are free again after Clear")
}

func TestStrokeStoreCommitOrder(t *testing.T) {
	s := NewStrokeStore(DefaultStrokeStyle)
	s.Commit(Bottom, seg(1, 1, 2, 2))
	s.Commit(Top, seg(3, 3, 4, 4))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, seg(1, 1, 2, 2), lines[0].Segment)
	assert.Equal(t, seg(3, 3, 4, 4), lines[1].Segment)
}

func TestStrokeStoreReplace(t *testing.T) {
	s := NewStrokeStore(StrokeStyle{OuterWidth: 10, InnerWidth: 5})
	assert.False(t, s.Replace(Top, seg(0, 0, 1, 1)), "empty slot")

	orig, _ := s.Commit(Top, seg(100, 100, 400, 100))
	require.True(t, s.Replace(Top, seg(10, 20, 30, 40)))

	got, ok := s.Line(Top)
	require.True(t, ok)
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, seg(10, 20, 30, 40), got.Segment)
	assert.Equal(t, float32(10), got.Strokes()[0].Width)
	assert.Equal(t, float32(5), got.Strokes()[1].Width)
}
