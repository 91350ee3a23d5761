package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"CompareBoard/internal/audio"
	"CompareBoard/internal/config"
	"CompareBoard/internal/engine"
	"CompareBoard/internal/export"
	"CompareBoard/internal/state"
)

func RunApp(cfg config.Config, player audio.Player) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Compare Board")
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	// Timer callbacks hop back onto the UI goroutine, which owns the engine.
	board := NewBoardWidget(cfg, engine.SystemClock{Dispatch: fyne.Do})
	panel := NewControlPanel(board, myWindow, cfg.Stacks.Max, exportOptions(cfg))
	Wire(board, panel, player)

	content := container.NewBorder(nil, panel.CanvasObject(), nil, nil, board)
	myWindow.SetContent(content)
	myWindow.SetOnClosed(player.Close)
	myWindow.ShowAndRun()
}

// Wire connects engine notifications to the control panel and audio cues.
func Wire(board *BoardWidget, panel *ControlPanel, player audio.Player) {
	eng := board.Engine()
	eng.OnBothLinesFound = panel.SetReady
	eng.OnComparisonSettled = panel.SetSettled
	eng.OnLineMatched = func(c state.Class, _ state.Line) {
		player.Matched()
		panel.SetStatus(fmt.Sprintf("Found the %s line", c))
	}
	eng.OnLineDiscarded = func() {
		player.Discarded()
	}
	eng.OnGlyphFormed = func(state.Glyph) {
		player.Settled()
		one, two := board.StackSizes()
		panel.SetStatus(export.Caption(one, two))
	}
}

func exportOptions(cfg config.Config) export.Options {
	opts := export.DefaultOptions()
	opts.Layout = cfg.Layout()
	opts.GlyphScale = cfg.Glyph.Scale
	opts.Style = state.StrokeStyle{OuterWidth: cfg.Stroke.OuterWidth, InnerWidth: cfg.Stroke.InnerWidth}
	if c, err := config.ParseColor(cfg.Stroke.InnerColor); err == nil {
		opts.InnerColor = c
	}
	return opts
}
