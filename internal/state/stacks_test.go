package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStackSize(t *testing.T) {
	valid := map[string]int{"1": 1, "7": 7, " 10 ": 10}
	for in, want := range valid {
		got, err := ParseStackSize(in, DefaultMaxStack)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "0", "01", "11", "-3", "2.5", "abc", "1e1"} {
		_, err := ParseStackSize(in, DefaultMaxStack)
		assert.True(t, errors.Is(err, ErrInvalidStackSize), "%q should be rejected", in)
	}
}

func TestStackLayoutGap(t *testing.T) {
	l := DefaultStackLayout
	assert.Equal(t, float32(0), l.Gap(1, 500))
	assert.Equal(t, float32(0), l.Gap(10, 300), "stack taller than the space")
	// 3*40 + 32 = 152; (452-152)/2 = 150
	assert.Equal(t, float32(150), l.Gap(3, 452))
}

func TestStackLayoutArrange(t *testing.T) {
	l := DefaultStackLayout
	st := l.Arrange(Size{Width: 900, Height: 600}, 3, 2)

	require.Len(t, st.One, 3)
	require.Len(t, st.Two, 2)
	// avail 500, total 152, gap 174
	assert.Equal(t, float32(174), st.Gap)

	assert.Equal(t, AnchorAt(300, st.One[0].Y), st.Anchors.StackOneTop)
	assert.Equal(t, AnchorAt(300, st.One[2].Y+40), st.Anchors.StackOneBottom)
	assert.Equal(t, AnchorAt(600, st.Two[0].Y), st.Anchors.StackTwoTop)
	assert.Equal(t, AnchorAt(600, st.Two[1].Y+40), st.Anchors.StackTwoBottom)

	// Stacks are vertically centred.
	assert.InDelta(t, 600-(st.One[2].Y+40), st.One[0].Y, 0.01)
	assert.InDelta(t, 600-(st.Two[1].Y+40), st.Two[0].Y, 0.01)

	assert.True(t, st.ColumnOne.Contains(Point{X: 300, Y: 10}))
	assert.False(t, st.ColumnOne.Contains(Point{X: 600, Y: 10}))
	assert.True(t, st.ColumnTwo.Contains(Point{X: 610, Y: 590}))
}

func TestStackLayoutUnmeasured(t *testing.T) {
	st := DefaultStackLayout.Arrange(Size{}, 3, 2)
	assert.Empty(t, st.One)
	assert.False(t, st.Anchors.StackOneTop.Set)
	assert.False(t, st.Anchors.StackTwoBottom.Set)
}
