package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; every widget implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Sizer is implemented by views that render to the exact size of their grid area.
type Sizer interface {
	SetSize(width, height int)
}
