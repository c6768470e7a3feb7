package ui

import tea "github.com/charmbracelet/bubbletea"

// Command is an action with pre-bound arguments, run when a widget is activated.
// The zero Command does nothing.
type Command struct {
	Fn   func(args ...string) tea.Cmd
	Args []string
}

// Bind captures args for a later call to fn.
func Bind(fn func(args ...string) tea.Cmd, args ...string) Command {
	return Command{Fn: fn, Args: args}
}

// Call invokes the bound function with its captured arguments.
func (c Command) Call() tea.Cmd {
	if c.Fn == nil {
		return nil
	}
	return c.Fn(c.Args...)
}

// Bound reports whether the command has a function to run.
func (c Command) Bound() bool {
	return c.Fn != nil
}
