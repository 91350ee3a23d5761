package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"CompareBoard/internal/config"
	"CompareBoard/internal/engine"
	"CompareBoard/internal/state"
)

var (
	backgroundColor = color.NRGBA{R: 0x1b, G: 0x24, B: 0x3b, A: 0xff}
	squareFill      = color.NRGBA{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff}
	squareEdge      = color.NRGBA{R: 0xb8, G: 0x86, B: 0x1a, A: 0xff}
)

// BoardWidget is the drawing surface: two stacks of squares and the comparison lines drawn
// between them. It is also the layout collaborator the engine queries for anchors.
type BoardWidget struct {
	widget.BaseWidget

	eng      *engine.Engine
	surface  *lineSurface
	layout   state.StackLayout
	one, two int
	maxStack int
	mode     state.Mode

	// OnStacksChanged fires when a stack size changes from the board itself (add/remove mode).
	OnStacksChanged func(one, two int)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)
var _ engine.Host = (*BoardWidget)(nil)

// NewBoardWidget creates a board configured by cfg whose animations run on clock.
func NewBoardWidget(cfg config.Config, clock engine.Clock) *BoardWidget {
	defaults := config.Default().Stroke
	outer := strokeColor(cfg.Stroke.OuterColor, defaults.OuterColor)
	inner := strokeColor(cfg.Stroke.InnerColor, defaults.InnerColor)
	b := &BoardWidget{
		surface:  &lineSurface{outer: outer, inner: inner},
		layout:   cfg.Layout(),
		one:      cfg.Stacks.One,
		two:      cfg.Stacks.Two,
		maxStack: cfg.Stacks.Max,
	}
	b.eng = engine.New(b, b.surface, clock, cfg.Engine())
	b.eng.OnRepaint = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

// strokeColor parses s, falling back to def when s is not a colour.
func strokeColor(s, def string) color.NRGBA {
	c, err := config.ParseColor(s)
	if err != nil {
		log.Printf("[UI] Stroke colour: %v; using %s", err, def)
		c, _ = config.ParseColor(def)
	}
	return c
}

func (b *BoardWidget) Engine() *engine.Engine { return b.eng }

// Anchors measures the stacks at the board's current size.
func (b *BoardWidget) Anchors() state.AnchorSet {
	return b.stacks().Anchors
}

func (b *BoardWidget) StackSizes() (int, int) { return b.one, b.two }

func (b *BoardWidget) Mode() state.Mode { return b.mode }

func (b *BoardWidget) SetMode(m state.Mode) {
	if m == b.mode {
		return
	}
	if b.eng.Drawing() {
		b.eng.Leave()
	}
	log.Printf("[UI] Mode %s -> %s", b.mode, m)
	b.mode = m
}

// SetStackSizes changes both stacks. Lines already drawn no longer touch the moved anchors, so
// any drawing or comparison in progress is reset.
func (b *BoardWidget) SetStackSizes(one, two int) {
	one, two = b.clamp(one), b.clamp(two)
	if one == b.one && two == b.two {
		return
	}
	b.one, b.two = one, two
	b.eng.Reset()
	b.Refresh()
}

func (b *BoardWidget) clamp(n int) int {
	if n < 1 {
		return 1
	}
	if n > b.maxStack {
		return b.maxStack
	}
	return n
}

func (b *BoardWidget) stacks() state.Stacks {
	return b.layout.Arrange(toSize(b.Size()), b.one, b.two)
}

func toPoint(p fyne.Position) state.Point { return state.Point{X: p.X, Y: p.Y} }

func toSize(s fyne.Size) state.Size { return state.Size{Width: s.Width, Height: s.Height} }

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	switch b.mode {
	case state.ModeDrawCompare:
		if e.Button == desktop.MouseButtonPrimary {
			b.eng.Begin(toPoint(e.Position))
		}
	case state.ModeAddRemove:
		b.addRemove(toPoint(e.Position), e.Button)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.eng.End(toPoint(e.Position))
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.eng.Update(toPoint(e.Position))
}

// DragEnd closes a gesture the pointer-up event did not reach.
func (b *BoardWidget) DragEnd() {
	b.eng.Leave()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.eng.Update(toPoint(e.Position))
}

// MouseOut lifts the pen so a stroke cannot get stuck when the pointer leaves the board.
func (b *BoardWidget) MouseOut() {
	b.eng.Leave()
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	if b.mode == state.ModeDrawCompare {
		b.eng.Begin(toPoint(e.Position))
	}
}

func (b *BoardWidget) TouchUp(e *mobile.TouchEvent) {
	b.eng.End(toPoint(e.Position))
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.eng.Leave()
}

func (b *BoardWidget) Cursor() desktop.Cursor {
	if b.mode == state.ModeDrawCompare {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

// addRemove grows the clicked stack on a primary click and shrinks it on a secondary one.
func (b *BoardWidget) addRemove(p state.Point, button desktop.MouseButton) {
	delta := 1
	if button == desktop.MouseButtonSecondary {
		delta = -1
	}
	st := b.stacks()
	one, two := b.one, b.two
	switch {
	case st.ColumnOne.Contains(p):
		one += delta
	case st.ColumnTwo.Contains(p):
		two += delta
	default:
		return
	}
	before1, before2 := b.one, b.two
	b.SetStackSizes(one, two)
	if (b.one != before1 || b.two != before2) && b.OnStacksChanged != nil {
		b.OnStacksChanged(b.one, b.two)
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(backgroundColor)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

// rebuild lays the squares out for the current size and stacks the engine's lines on top.
func (r *boardWidgetRenderer) rebuild() {
	st := r.board.stacks()
	objects := make([]fyne.CanvasObject, 0, 1+len(st.One)+len(st.Two)+len(r.board.surface.lines))
	objects = append(objects, r.background)
	for _, sq := range append(append([]state.Rect{}, st.One...), st.Two...) {
		rect := canvas.NewRectangle(squareFill)
		rect.StrokeColor = squareEdge
		rect.StrokeWidth = 2
		rect.CornerRadius = 4
		rect.Move(fyne.NewPos(sq.X, sq.Y))
		rect.Resize(fyne.NewSize(sq.Width, sq.Height))
		objects = append(objects, rect)
	}
	objects = append(objects, r.board.surface.objects()...)
	r.objects = objects
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.eng.Resize(toSize(size))
	r.rebuild()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
