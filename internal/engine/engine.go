package engine

import (
	"log"
	"time"

	"CompareBoard/internal/state"
)

// Host is the layout collaborator the engine queries on demand.
type Host interface {
	Anchors() state.AnchorSet
	StackSizes() (one, two int)
	Mode() state.Mode
}

// Options are the engine's tunable constants.
type Options struct {
	Tolerance     float32
	FadeStep      float64
	FadeInterval  time.Duration
	Frames        int
	FrameInterval time.Duration
	Settle        time.Duration
	GlyphScale    float32
	Style         state.StrokeStyle
}

func DefaultOptions() Options {
	return Options{
		Tolerance:     state.DefaultTolerance,
		FadeStep:      DefaultFadeStep,
		FadeInterval:  DefaultFadeInterval,
		Frames:        DefaultFrames,
		FrameInterval: DefaultFrameInterval,
		Settle:        DefaultSettle,
		GlyphScale:    state.DefaultGlyphScale,
		Style:         state.DefaultStrokeStyle,
	}
}

// Engine turns gestures into comparison lines and animates them into a glyph. It is not safe
// for concurrent use: every method and every Clock callback must run on one goroutine.
type Engine struct {
	opts    Options
	host    Host
	surface Surface
	sched   *Scheduler
	store   *state.StrokeStore
	match   state.MatchState
	gesture Gesture
	size    state.Size

	transient *state.Segment
	fade      *Fade
	fading    fadeTarget

	phase Phase
	round string
	glyph state.Glyph

	// OnBothLinesFound fires with true when both lines are first present and with false
	// when they are cleared again.
	OnBothLinesFound func(ready bool)
	// OnComparisonSettled fires with false when a comparison starts and true once it has
	// fully faded out.
	OnComparisonSettled func(settled bool)
	OnLineMatched       func(c state.Class, l state.Line)
	OnLineDiscarded     func()
	OnGlyphFormed       func(g state.Glyph)
	// OnRepaint runs after every repaint so the host can flush the surface.
	OnRepaint func()
}

func New(host Host, surface Surface, clock Clock, opts Options) *Engine {
	return &Engine{
		opts:    opts,
		host:    host,
		surface: surface,
		sched:   NewScheduler(clock),
		store:   state.NewStrokeStore(opts.Style),
	}
}

func (e *Engine) Store() *state.StrokeStore { return e.store }

func (e *Engine) Match() state.MatchState { return e.match }

func (e *Engine) Phase() Phase { return e.phase }

func (e *Engine) Glyph() state.Glyph { return e.glyph }

func (e *Engine) Size() state.Size { return e.size }

// Ready reports whether a comparison may be triggered.
func (e *Engine) Ready() bool { return e.match.Both() && e.phase == PhaseIdle }

func (e *Engine) Drawing() bool { return e.gesture.Active() }

// Begin starts a gesture at p when the host is in draw/compare mode and no comparison runs.
func (e *Engine) Begin(p state.Point) {
	if e.host.Mode() != state.ModeDrawCompare || e.phase != PhaseIdle {
		return
	}
	if e.gesture.Begin(p) {
		e.Repaint()
	}
}

func (e *Engine) Update(p state.Point) {
	if e.gesture.Update(p) {
		e.Repaint()
	}
}

func (e *Engine) End(p state.Point) {
	if seg, ok := e.gesture.End(p); ok {
		e.finish(seg)
	}
}

// Leave ends the gesture where the pointer was last seen.
func (e *Engine) Leave() {
	if seg, ok := e.gesture.Leave(); ok {
		e.finish(seg)
	}
}

func (e *Engine) finish(seg state.Segment) {
	anchors := e.host.Anchors()
	class := state.Classify(seg, anchors, e.match, e.opts.Tolerance)
	if class == state.Discard {
		e.discard(seg)
		return
	}

	e.match.Mark(class)
	line, ok := e.store.Commit(class, state.Orient(seg, class, anchors, e.opts.Tolerance))
	e.Repaint()
	if ok && e.OnLineMatched != nil {
		e.OnLineMatched(class, line)
	}
	if e.match.Both() && e.OnBothLinesFound != nil {
		e.OnBothLinesFound(true)
	}
}

func (e *Engine) discard(seg state.Segment) {
	e.dropTransient()
	e.transient = &seg
	e.fade = NewFade(e.opts.FadeStep)
	e.fading = fadeTransient
	if err := e.sched.Start("fade-line", e.fadeTask(), e.opts.FadeInterval, e.dropTransient); err != nil {
		// Only reachable if a comparison owns the scheduler; the line just disappears.
		log.Printf("[ENGINE] Could not fade discarded line: %v", err)
		e.dropTransient()
	}
	e.Repaint()
	if e.OnLineDiscarded != nil {
		e.OnLineDiscarded()
	}
}

// dropTransient cancels a running discard fade and removes its line.
func (e *Engine) dropTransient() {
	if e.fading == fadeTransient {
		if e.sched.Running() == "fade-line" {
			e.sched.Cancel()
		}
		e.fade = nil
		e.fading = fadeNone
	}
	if e.transient != nil {
		e.transient = nil
		e.Repaint()
	}
}

func (e *Engine) fadeTask() Task {
	return TaskFunc(func() bool {
		done := e.fade.Step()
		e.Repaint()
		return done
	})
}

// TriggerComparison starts morphing the two lines into the glyph for the host's stack sizes.
// It does nothing unless both lines are present and no comparison is running.
func (e *Engine) TriggerComparison() bool {
	if !e.Ready() || !e.store.Full() {
		return false
	}
	e.gesture.Cancel()
	e.dropTransient()

	one, two := e.host.StackSizes()
	e.glyph = state.GlyphFor(one, two)
	e.round = state.NewRoundID()
	target := state.TargetFor(e.glyph, e.size, e.opts.GlyphScale)
	morph := NewMorph(e.store, target, e.opts.Frames)

	task := TaskFunc(func() bool {
		done := morph.Step()
		e.Repaint()
		return done
	})
	if err := e.sched.Start("morph", task, e.opts.FrameInterval, e.settle); err != nil {
		log.Printf("[ENGINE] Round %s: %v", e.round, err)
		return false
	}
	e.enter(PhaseAnimating)
	log.Printf("[ENGINE] Round %s: %d vs %d, morphing into %q", e.round, one, two, e.glyph)
	if e.OnComparisonSettled != nil {
		e.OnComparisonSettled(false)
	}
	return true
}

func (e *Engine) settle() {
	e.enter(PhaseSettling)
	if e.OnGlyphFormed != nil {
		e.OnGlyphFormed(e.glyph)
	}
	hold := TaskFunc(func() bool { return true })
	if err := e.sched.Start("settle", hold, e.opts.Settle, e.fadeOutAll); err != nil {
		log.Printf("[ENGINE] Round %s: %v", e.round, err)
	}
}

func (e *Engine) fadeOutAll() {
	e.enter(PhaseFadingOut)
	e.fade = NewFade(e.opts.FadeStep)
	e.fading = fadeAll
	if err := e.sched.Start("fade-all", e.fadeTask(), e.opts.FadeInterval, e.finishRound); err != nil {
		log.Printf("[ENGINE] Round %s: %v", e.round, err)
	}
}

func (e *Engine) finishRound() {
	log.Printf("[ENGINE] Round %s finished", e.round)
	e.store.Clear()
	e.match.Reset()
	e.fade = nil
	e.fading = fadeNone
	e.enter(PhaseIdle)
	e.Repaint()
	if e.OnBothLinesFound != nil {
		e.OnBothLinesFound(false)
	}
	if e.OnComparisonSettled != nil {
		e.OnComparisonSettled(true)
	}
}

func (e *Engine) enter(next Phase) {
	if !e.phase.CanEnter(next) {
		log.Printf("[ENGINE] Ignoring phase change %s -> %s", e.phase, next)
		return
	}
	e.phase = next
}

// Reset cancels any running comparison or fade and clears every line.
func (e *Engine) Reset() {
	wasReady := e.match.Both()
	wasRunning := e.phase != PhaseIdle

	e.sched.Cancel()
	e.gesture.Cancel()
	e.store.Clear()
	e.match.Reset()
	e.transient = nil
	e.fade = nil
	e.fading = fadeNone
	if wasRunning {
		e.enter(PhaseIdle)
		log.Printf("[ENGINE] Round %s cancelled", e.round)
	}
	e.Repaint()

	if wasReady && e.OnBothLinesFound != nil {
		e.OnBothLinesFound(false)
	}
	if wasRunning && e.OnComparisonSettled != nil {
		e.OnComparisonSettled(true)
	}
}

// Resize records new surface dimensions. Geometry already on screen is not rescaled.
func (e *Engine) Resize(size state.Size) {
	if size == e.size {
		return
	}
	e.size = size
	if e.surface != nil {
		e.surface.Resize(size)
	}
	e.Repaint()
}

// Frame returns the strokes to draw: committed lines, then a fading discarded line, then the
// line being drawn.
func (e *Engine) Frame() Frame {
	committed := float32(1)
	if e.fading == fadeAll && e.fade != nil {
		committed = e.fade.Opacity()
	}
	f := make(Frame, 0, 8)
	for _, s := range e.store.Strokes() {
		f = append(f, RenderStroke{Stroke: s, Opacity: committed})
	}
	if e.transient != nil {
		opacity := float32(1)
		if e.fading == fadeTransient && e.fade != nil {
			opacity = e.fade.Opacity()
		}
		f = appendLine(f, *e.transient, e.opts.Style, opacity)
	}
	if seg, ok := e.gesture.Segment(); ok {
		f = appendLine(f, seg, e.opts.Style, 1)
	}
	return f
}

// Repaint redraws the surface from scratch.
func (e *Engine) Repaint() {
	if e.surface != nil {
		Paint(e.surface, e.Frame())
	}
	if e.OnRepaint != nil {
		e.OnRepaint()
	}
}
