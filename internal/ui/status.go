package ui

import tea "github.com/charmbracelet/bubbletea"

// Status echoes the most recent action.
type Status struct {
	Value         string
	width, height int
}

var _ View = (*Status)(nil)

// NewStatus creates a status panel showing "-".
func NewStatus() *Status {
	return &Status{Value: "-"}
}

// SetStatus returns a command that updates the status panel.
func SetStatus(v string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Value: v} }
}

// SetSize implements Sizer.
func (s *Status) SetSize(w, h int) {
	s.width, s.height = w, h
}

// Init implements View.
func (s *Status) Init() tea.Cmd { return nil }

// Update implements View.
func (s *Status) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(StatusMsg); ok {
		s.Value = msg.Value
	}
	return s, nil
}

// View implements View.
func (s *Status) View() string {
	return renderBox(Styles.Panel.Inherit(Styles.Value), "Status", s.Value, s.width, s.height)
}
