package ui

import "time"

// MoveFocusMsg moves focus one step in Dir (arrow keys).
type MoveFocusMsg struct {
	Dir Direction
}

// ActivateMsg runs the focused widget's command (Enter).
type ActivateMsg struct{}

// StatusMsg replaces the text shown in the status panel.
type StatusMsg struct {
	Value string
}

// ClockTickMsg triggers a clock redraw. ID matches the clock that scheduled it.
type ClockTickMsg struct {
	ID   int
	Time time.Time
}
