package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridclock/internal/ui/textutil"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - panel titles, borders
	ColorHighlight = "205" // Magenta - help keys
	ColorFocus     = "160" // Red - focused button background
	ColorMuted     = "241" // Gray - hints, help descriptions
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across widgets.
var Styles = struct {
	Panel         lipgloss.Style // Bordered box for clock, timer, status
	Title         lipgloss.Style // Title drawn into the top border
	Button        lipgloss.Style // Unfocused button
	ButtonFocused lipgloss.Style // Focused button ("on red")
	Value         lipgloss.Style // Clock/timer/status text
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}{
	Panel: lipgloss.NewStyle().
		BorderForeground(lipgloss.Color(ColorAccent)),
	Title: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Button: lipgloss.NewStyle().
		BorderForeground(lipgloss.Color(ColorText)).
		Foreground(lipgloss.Color(ColorText)).
		Align(lipgloss.Center, lipgloss.Center),
	ButtonFocused: lipgloss.NewStyle().
		BorderForeground(lipgloss.Color(ColorFocus)).
		Background(lipgloss.Color(ColorFocus)).
		Foreground(lipgloss.Color("231")).
		Bold(true).
		Align(lipgloss.Center, lipgloss.Center),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// renderBox draws body inside a rounded border exactly w x h cells.
// A non-empty title replaces the left part of the top border.
func renderBox(s lipgloss.Style, title, body string, w, h int) string {
	if w < 2 || h < 2 {
		return ""
	}
	innerW, innerH := w-2, h-2
	body = textutil.TruncateLines(body, innerW, innerH)

	box := s.Border(lipgloss.RoundedBorder()).Width(innerW).Height(innerH)
	if title == "" {
		return box.Render(body)
	}

	b := lipgloss.RoundedBorder()
	t := textutil.Truncate(title, innerW)
	edge := lipgloss.NewStyle().Foreground(s.GetBorderTopForeground())
	top := edge.Render(b.TopLeft) +
		Styles.Title.Render(t) +
		edge.Render(strings.Repeat(b.Top, innerW-textutil.VisualWidth(t))+b.TopRight)
	return lipgloss.JoinVertical(lipgloss.Left, top, box.BorderTop(false).Render(body))
}
