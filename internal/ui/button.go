package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gridclock/internal/ui/textutil"
)

// Button is a focusable widget that runs its Command on activation.
type Button struct {
	ID      string
	Label   string
	Command Command

	focused       bool
	width, height int
}

// Ensure Button is a focusable, activatable View.
var (
	_ View      = (*Button)(nil)
	_ Focusable = (*Button)(nil)
	_ Activator = (*Button)(nil)
)

// NewButton creates an unfocused button. cmd may be the zero Command.
func NewButton(id, label string, cmd Command) *Button {
	return &Button{ID: id, Label: label, Command: cmd}
}

func (b *Button) SetFocused(f bool) { b.focused = f }
func (b *Button) Focused() bool     { return b.focused }

// Activate returns the bound command, or nil if none is bound.
func (b *Button) Activate() tea.Cmd {
	return b.Command.Call()
}

// SetSize implements Sizer.
func (b *Button) SetSize(w, h int) {
	b.width, b.height = w, h
}

// Init implements View.
func (b *Button) Init() tea.Cmd { return nil }

// Update implements View. Buttons react only to activation, which the
// FocusManager drives.
func (b *Button) Update(tea.Msg) (View, tea.Cmd) { return b, nil }

// View implements View.
func (b *Button) View() string {
	w, h := b.width, b.height
	if w == 0 || h == 0 {
		w, h = textutil.VisualWidth(b.Label)+4, 3
	}
	style := Styles.Button
	if b.focused {
		style = Styles.ButtonFocused
	}
	return renderBox(style, "", b.Label, w, h)
}
