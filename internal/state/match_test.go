package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAnchors() AnchorSet {
	return AnchorSet{
		StackOneTop:    AnchorAt(95, 98),
		StackOneBottom: AnchorAt(95, 400),
		StackTwoTop:    AnchorAt(405, 102),
		StackTwoBottom: AnchorAt(405, 380),
	}
}

func seg(x1, y1, x2, y2 float32) Segment {
	return Segment{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		seg   Segment
		match MatchState
		want  Class
	}{
		{"top left to right", seg(100, 100, 400, 100), MatchState{}, Top},
		{"top right to left", seg(400, 100, 100, 100), MatchState{}, Top},
		{"bottom", seg(110, 390, 390, 370), MatchState{}, Bottom},
		{"bottom reversed", seg(390, 370, 110, 390), MatchState{}, Bottom},
		{"top already found", seg(100, 100, 400, 100), MatchState{TopFound: true}, Discard},
		{"bottom already found", seg(110, 390, 390, 370), MatchState{BottomFound: true}, Discard},
		{"diagonal top to bottom", seg(100, 100, 400, 380), MatchState{}, Discard},
		{"one end only", seg(100, 100, 250, 100), MatchState{}, Discard},
		{"same stack", seg(95, 98, 95, 400), MatchState{}, Discard},
		{"x just outside tolerance", seg(35, 98, 405, 102), MatchState{}, Discard},
		{"y just outside tolerance", seg(95, 158, 405, 102), MatchState{}, Discard},
		{"just inside tolerance", seg(36, 157, 405, 102), MatchState{}, Top},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.seg, testAnchors(), tt.match, DefaultTolerance))
		})
	}
}

func TestClassifyTopWinsOverBottom(t *testing.T) {
	// Short stacks put top and bottom anchors within tolerance of each other.
	anchors := AnchorSet{
		StackOneTop:    AnchorAt(100, 100),
		StackOneBottom: AnchorAt(100, 140),
		StackTwoTop:    AnchorAt(300, 100),
		StackTwoBottom: AnchorAt(300, 140),
	}
	s := seg(100, 120, 300, 120)

	assert.Equal(t, Top, Classify(s, anchors, MatchState{}, DefaultTolerance))
	assert.Equal(t, Bottom, Classify(s, anchors, MatchState{TopFound: true}, DefaultTolerance))
}

func TestClassifyMissingAnchors(t *testing.T) {
	anchors := testAnchors()
	anchors.StackTwoTop = Anchor{}

	assert.Equal(t, Discard, Classify(seg(100, 100, 400, 100), anchors, MatchState{}, DefaultTolerance))
	assert.Equal(t, Discard, Classify(seg(0, 0, 0, 0), AnchorSet{}, MatchState{}, DefaultTolerance))
}

func TestMatchStateMark(t *testing.T) {
	var m MatchState

	assert.False(t, m.Mark(Discard))
	assert.True(t, m.Mark(Top))
	assert.False(t, m.Mark(Top), "second top must not change state")
	assert.False(t, m.Both())
	assert.True(t, m.Mark(Bottom))
	assert.True(t, m.Both())

	m.Reset()
	assert.Equal(t, MatchState{}, m)
}

func TestOrient(t *testing.T) {
	anchors := testAnchors()

	forward := seg(100, 100, 400, 100)
	assert.Equal(t, forward, Orient(forward, Top, anchors, DefaultTolerance))
	assert.Equal(t, forward, Orient(forward.Reversed(), Top, anchors, DefaultTolerance))

	bottom := seg(390, 370, 110, 390)
	assert.Equal(t, bottom.Reversed(), Orient(bottom, Bottom, anchors, DefaultTolerance))
}
