package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CompareBoard/internal/audio"
	"CompareBoard/internal/export"
	"CompareBoard/internal/state"
)

type countingPlayer struct {
	audio.Nop
	matched, discarded, settled int
}

func (p *countingPlayer) Matched()   { p.matched++ }
func (p *countingPlayer) Discarded() { p.discarded++ }
func (p *countingPlayer) Settled()   { p.settled++ }

func TestControlPanelStackEntries(t *testing.T) {
	b, _ := newTestBoard(t)
	p := NewControlPanel(b, nil, 10, export.DefaultOptions())

	p.stackChanged(0, "7")
	one, two := b.StackSizes()
	assert.Equal(t, 7, one)
	assert.Equal(t, 2, two)

	p.stackChanged(1, "0")
	_, two = b.StackSizes()
	assert.Equal(t, 2, two, "invalid input keeps the old size")

	p.entries[1].SetText("11")
	assert.Error(t, p.entries[1].Validate())
	p.entries[1].SetText("4")
	assert.NoError(t, p.entries[1].Validate())

	p.SyncStacks(5, 6)
	assert.Equal(t, "5", p.entries[0].Text)
	assert.Equal(t, "6", p.entries[1].Text)
}

func TestControlPanelModeSelection(t *testing.T) {
	b, _ := newTestBoard(t)
	p := NewControlPanel(b, nil, 10, export.DefaultOptions())
	assert.Equal(t, state.ModeNone, b.Mode())

	p.mode.SetSelected("Draw / Compare")
	assert.Equal(t, state.ModeDrawCompare, b.Mode())
	p.mode.SetSelected("Add / Remove")
	assert.Equal(t, state.ModeAddRemove, b.Mode())
}

func TestWiredComparisonFlow(t *testing.T) {
	b, clock := newTestBoard(t)
	p := NewControlPanel(b, nil, 10, export.DefaultOptions())
	player := &countingPlayer{}
	Wire(b, p, player)
	b.SetMode(state.ModeDrawCompare)
	a := b.Anchors()

	assert.True(t, p.play.Disabled())
	drawLine(b, a.StackOneTop.Pos, a.StackTwoTop.Pos)
	drawLine(b, a.StackOneTop.Pos, a.StackTwoBottom.Pos)
	drawLine(b, a.StackOneBottom.Pos, a.StackTwoBottom.Pos)
	assert.Equal(t, 2, player.matched)
	assert.Equal(t, 1, player.discarded)
	require.False(t, p.play.Disabled())

	p.Compare()
	assert.True(t, p.play.Disabled())
	assert.True(t, p.entries[0].Disabled())

	clock.Advance(10 * time.Second)
	assert.Equal(t, 1, player.settled)
	assert.False(t, p.entries[0].Disabled())
	assert.True(t, p.play.Disabled(), "lines are gone, nothing to compare")
	assert.Equal(t, "3 > 2", p.status.Text)
}
