package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Timer shows elapsed time of a stopwatch started and stopped by the buttons.
type Timer struct {
	sw            stopwatch.Model
	width, height int
}

var _ View = (*Timer)(nil)

// NewTimer creates a stopped timer that advances every interval.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = time.Second
	}
	return &Timer{sw: stopwatch.NewWithInterval(interval)}
}

// Start returns the command that starts the stopwatch.
func (t *Timer) Start() tea.Cmd { return t.sw.Start() }

// Stop returns the command that stops the stopwatch.
func (t *Timer) Stop() tea.Cmd { return t.sw.Stop() }

// Running reports whether the stopwatch is counting.
func (t *Timer) Running() bool { return t.sw.Running() }

// Elapsed returns the accumulated running time.
func (t *Timer) Elapsed() time.Duration { return t.sw.Elapsed() }

// SetSize implements Sizer.
func (t *Timer) SetSize(w, h int) {
	t.width, t.height = w, h
}

// Init implements View. The stopwatch stays stopped until START.
func (t *Timer) Init() tea.Cmd { return nil }

// Update implements View.
func (t *Timer) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	t.sw, cmd = t.sw.Update(msg)
	return t, cmd
}

// View implements View.
func (t *Timer) View() string {
	s := Styles.Panel.Inherit(Styles.Value).Align(lipgloss.Center, lipgloss.Top)
	return renderBox(s, "Timer", formatElapsed(t.Elapsed()), t.width, t.height)
}

// formatElapsed renders d as HH:MM:SS, truncating sub-second precision.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}
