package state

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidStackSize is returned for stack sizes that are not whole numbers in range.
var ErrInvalidStackSize = errors.New("invalid stack size")

// DefaultMaxStack is the largest stack a user may build.
const DefaultMaxStack = 10

var wholeNumber = regexp.MustCompile(`^[1-9]\d*$`)

// ParseStackSize validates user input for a stack size between 1 and max.
func ParseStackSize(text string, max int) (int, error) {
	text = strings.TrimSpace(text)
	if !wholeNumber.MatchString(text) {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidStackSize, text)
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("%w: %q must be between 1 and %d", ErrInvalidStackSize, text, max)
	}
	return n, nil
}

// Rect is an axis-aligned area on the surface.
type Rect struct {
	X, Y, Width, Height float32
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// StackLayout positions two vertical stacks of squares on the surface.
type StackLayout struct {
	Square  float32
	Padding float32
}

var DefaultStackLayout = StackLayout{Square: 40, Padding: 16}

// Stacks is the result of laying out both stacks.
type Stacks struct {
	One, Two  []Rect // squares, top to bottom
	ColumnOne Rect
	ColumnTwo Rect
	Gap       float32
	Anchors   AnchorSet
	Size      Size
}

// Gap returns the spacing between squares so that a stack of n squares fills avail.
func (l StackLayout) Gap(n int, avail float32) float32 {
	if n <= 1 {
		return 0
	}
	total := float32(n)*l.Square + 2*l.Padding
	if total >= avail {
		return 0
	}
	return (avail - total) / float32(n-1)
}

// Arrange lays out stacks of one and two squares. Both stacks share the gap computed for the
// larger one. A surface that has not been measured yet produces no squares and unset anchors.
func (l StackLayout) Arrange(size Size, one, two int) Stacks {
	st := Stacks{Size: size}
	if size.Empty() {
		return st
	}
	larger := one
	if two > larger {
		larger = two
	}
	st.Gap = l.Gap(larger, size.Height*5/6)

	colOne, colTwo := size.Width/3, size.Width*2/3
	st.One = l.column(colOne, size.Height, one, st.Gap)
	st.Two = l.column(colTwo, size.Height, two, st.Gap)
	st.ColumnOne = Rect{X: colOne - l.Square, Y: 0, Width: 2 * l.Square, Height: size.Height}
	st.ColumnTwo = Rect{X: colTwo - l.Square, Y: 0, Width: 2 * l.Square, Height: size.Height}
	st.Anchors = AnchorSet{
		StackOneTop:    topAnchor(st.One),
		StackOneBottom: bottomAnchor(st.One),
		StackTwoTop:    topAnchor(st.Two),
		StackTwoBottom: bottomAnchor(st.Two),
	}
	return st
}

func (l StackLayout) column(cx, height float32, n int, gap float32) []Rect {
	if n <= 0 {
		return nil
	}
	extent := float32(n)*l.Square + float32(n-1)*gap
	y := (height - extent) / 2
	squares := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		squares = append(squares, Rect{X: cx - l.Square/2, Y: y, Width: l.Square, Height: l.Square})
		y += l.Square + gap
	}
	return squares
}

func topAnchor(squares []Rect) Anchor {
	if len(squares) == 0 {
		return Anchor{}
	}
	r := squares[0]
	return AnchorAt(r.X+r.Width/2, r.Y)
}

func bottomAnchor(squares []Rect) Anchor {
	if len(squares) == 0 {
		return Anchor{}
	}
	r := squares[len(squares)-1]
	return AnchorAt(r.X+r.Width/2, r.Y+r.Height)
}
