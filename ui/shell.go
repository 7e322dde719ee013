// Package ui provides the interactive converter window using Fyne.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/chrisuehlinger/hiccup/convert"
	"github.com/chrisuehlinger/hiccup/printer"
)

// Shell is the converter window: an HTML entry pane on the left, the
// generated element calls on the right, conversion options on top.
type Shell struct {
	app    fyne.App
	window fyne.Window

	input  *widget.Entry
	output *widget.Entry

	nsEntry    *widget.Entry
	keepAttrs  *widget.Check
	convertBtn *widget.Button
}

// NewShell creates the converter window.
func NewShell() *Shell {
	a := app.New()
	w := a.NewWindow("HTML to Hiccup")
	w.Resize(fyne.NewSize(1000, 600))

	s := &Shell{
		app:    a,
		window: w,
	}
	s.setupUI()
	return s
}

// setupUI creates the window components.
func (s *Shell) setupUI() {
	s.input = widget.NewMultiLineEntry()
	s.input.SetPlaceHolder("Paste an HTML fragment...")
	s.input.Wrapping = fyne.TextWrapWord

	s.output = widget.NewMultiLineEntry()
	s.output.SetPlaceHolder("Generated element calls appear here")
	s.output.Wrapping = fyne.TextWrapOff
	s.output.TextStyle = fyne.TextStyle{Monospace: true}

	s.nsEntry = widget.NewEntry()
	s.nsEntry.SetPlaceHolder("Namespace (e.g. dom)")
	s.nsEntry.SetText("dom")

	s.keepAttrs = widget.NewCheck("Keep empty attribute maps", nil)

	s.convertBtn = widget.NewButton("Convert", s.convert)

	optionsBar := container.NewBorder(nil, nil,
		nil,
		container.NewHBox(s.keepAttrs, s.convertBtn),
		s.nsEntry,
	)

	split := container.NewHSplit(s.input, s.output)
	split.SetOffset(0.5)

	mainContent := container.NewBorder(
		optionsBar,
		nil, nil, nil,
		split,
	)

	s.window.SetContent(mainContent)
}

// convert runs the current input through the converter and shows the
// printed calls, or the parse error, in the output pane.
func (s *Shell) convert() {
	opts := convert.Options{
		Namespace:      s.nsEntry.Text,
		KeepEmptyAttrs: s.keepAttrs.Checked,
	}

	res, err := convert.FromString(s.input.Text, opts)
	if err != nil {
		s.output.SetText("parse error: " + err.Error())
		return
	}
	s.output.SetText(printer.SprintResult(res))
}

// SetInput replaces the HTML entry content and converts it immediately.
func (s *Shell) SetInput(fragment string) {
	s.input.SetText(fragment)
	s.convert()
}

// Run shows the window and enters the event loop. Blocks until the
// window closes.
func (s *Shell) Run() {
	s.window.ShowAndRun()
}
