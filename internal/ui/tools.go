package ui

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"CompareBoard/internal/export"
	"CompareBoard/internal/state"
)

const helpText = "Pick Draw / Compare, join the tops of the stacks with one line and the bottoms with another, then press Compare."

var modeLabels = []string{"Off", "Add / Remove", "Draw / Compare"}

var modeByLabel = map[string]state.Mode{
	"Off":            state.ModeNone,
	"Add / Remove":   state.ModeAddRemove,
	"Draw / Compare": state.ModeDrawCompare,
}

// ControlPanel holds the stack inputs, the interaction mode and the compare controls.
type ControlPanel struct {
	board     *BoardWidget
	window    fyne.Window
	maxStack  int
	exportOpt export.Options

	entries [2]*widget.Entry
	mode    *widget.RadioGroup
	play    *widget.Button
	clear   *widget.Button
	save    *widget.Button
	status  *widget.Label
}

func NewControlPanel(board *BoardWidget, window fyne.Window, maxStack int, exportOpt export.Options) *ControlPanel {
	p := &ControlPanel{
		board:     board,
		window:    window,
		maxStack:  maxStack,
		exportOpt: exportOpt,
		status:    widget.NewLabel("Ready"),
	}

	one, two := board.StackSizes()
	for i, n := range []int{one, two} {
		e := widget.NewEntry()
		e.SetText(strconv.Itoa(n))
		e.Validator = func(text string) error {
			_, err := state.ParseStackSize(text, p.maxStack)
			return err
		}
		e.OnChanged = func(text string) { p.stackChanged(i, text) }
		p.entries[i] = e
	}

	p.mode = widget.NewRadioGroup(modeLabels, func(label string) {
		board.SetMode(modeByLabel[label])
	})
	p.mode.Horizontal = true
	p.mode.Required = true
	p.mode.SetSelected(modeLabels[0])

	p.play = widget.NewButtonWithIcon("Compare", theme.MediaPlayIcon(), p.Compare)
	p.play.Importance = widget.HighImportance
	p.play.Disable()
	p.clear = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() {
		board.Engine().Reset()
		p.SetStatus("Cleared")
	})
	p.save = widget.NewButtonWithIcon("Worksheet", theme.DocumentSaveIcon(), p.showExport)

	board.OnStacksChanged = p.SyncStacks
	return p
}

// stackChanged applies a valid entry to the board and ignores anything else.
func (p *ControlPanel) stackChanged(index int, text string) {
	n, err := state.ParseStackSize(text, p.maxStack)
	if err != nil {
		if errors.Is(err, state.ErrInvalidStackSize) {
			p.SetStatus(fmt.Sprintf("Stack %d: enter a number from 1 to %d", index+1, p.maxStack))
		}
		return
	}
	one, two := p.board.StackSizes()
	if index == 0 {
		one = n
	} else {
		two = n
	}
	p.board.SetStackSizes(one, two)
	p.SetStatus(fmt.Sprintf("Stacks: %d and %d", one, two))
}

// SyncStacks shows sizes that changed on the board itself.
func (p *ControlPanel) SyncStacks(one, two int) {
	p.entries[0].SetText(strconv.Itoa(one))
	p.entries[1].SetText(strconv.Itoa(two))
}

func (p *ControlPanel) Compare() {
	if !p.board.Engine().TriggerComparison() {
		p.SetStatus("Draw the top and bottom lines first")
	}
}

// SetReady enables the Compare button once both lines are drawn.
func (p *ControlPanel) SetReady(ready bool) {
	if ready {
		p.play.Enable()
		p.SetStatus("Both lines found, press Compare")
	} else {
		p.play.Disable()
	}
}

// SetSettled locks the stack controls while a comparison is animating.
func (p *ControlPanel) SetSettled(settled bool) {
	for _, e := range p.entries {
		if settled {
			e.Enable()
		} else {
			e.Disable()
		}
	}
	if settled {
		p.mode.Enable()
		p.save.Enable()
	} else {
		p.play.Disable()
		p.mode.Disable()
		p.save.Disable()
	}
}

func (p *ControlPanel) SetStatus(text string) {
	p.status.SetText(text)
}

func (p *ControlPanel) showExport() {
	if p.window == nil {
		return
	}
	one, two := p.board.StackSizes()
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		if w == nil {
			return
		}
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("[EXPORT] Error closing writer: %v", err)
			}
		}()
		if err := export.Worksheet(w, one, two, p.exportOpt); err != nil {
			log.Printf("[EXPORT] %v", err)
			p.SetStatus("Error writing worksheet")
			return
		}
		p.SetStatus("Saved worksheet " + export.Caption(one, two))
	}, p.window)
	d.SetFileName(fmt.Sprintf("compare-%d-%d.pdf", one, two))
	d.Show()
}

func (p *ControlPanel) CanvasObject() fyne.CanvasObject {
	sizes := container.NewHBox(
		widget.NewLabel("Stack 1"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(60, 36)), p.entries[0]),
		widget.NewLabel("Stack 2"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(60, 36)), p.entries[1]),
		widget.NewSeparator(),
		p.mode,
	)
	actions := container.NewHBox(p.play, p.clear, p.save, layout.NewSpacer(), p.status)
	return container.NewVBox(
		widget.NewLabelWithStyle("Control Panel", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(helpText),
		sizes,
		actions,
	)
}
