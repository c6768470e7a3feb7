package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var lastClockID atomic.Int64

func nextClockID() int {
	return int(lastClockID.Add(1))
}

// Clock shows the wall-clock time, redrawn every Interval.
type Clock struct {
	Interval time.Duration
	Now      func() time.Time

	id            int
	width, height int
}

var _ View = (*Clock)(nil)

// NewClock creates a clock that redraws every interval (one second if interval <= 0).
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = time.Second
	}
	return &Clock{Interval: interval, Now: time.Now, id: nextClockID()}
}

// ID identifies this clock's ticks.
func (c *Clock) ID() int { return c.id }

// SetSize implements Sizer.
func (c *Clock) SetSize(w, h int) {
	c.width, c.height = w, h
}

// Init implements View. Starts the tick loop.
func (c *Clock) Init() tea.Cmd {
	return c.tick()
}

// Update implements View.
func (c *Clock) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(ClockTickMsg); ok && msg.ID == c.id {
		return c, c.tick()
	}
	return c, nil
}

// View implements View.
func (c *Clock) View() string {
	s := Styles.Panel.Inherit(Styles.Value).Align(lipgloss.Center, lipgloss.Center)
	return renderBox(s, "Clock", c.Now().Format(time.TimeOnly), c.width, c.height)
}

func (c *Clock) tick() tea.Cmd {
	id := c.id
	return tea.Tick(c.Interval, func(t time.Time) tea.Msg {
		return ClockTickMsg{ID: id, Time: t}
	})
}
