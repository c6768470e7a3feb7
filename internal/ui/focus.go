package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Direction is a directional focus input.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a key name ("up", "down", "left", "right") to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return 0, false
}

// Position is a (column, row) index into a focus grid.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Focusable is a widget that can hold input focus.
type Focusable interface {
	SetFocused(bool)
	Focused() bool
}

// Activator is implemented by focusable widgets that run a command on Enter.
type Activator interface {
	Activate() tea.Cmd
}

// FocusManager tracks focus across a ragged grid of widgets.
// Grid is indexed Grid[column][row]; columns may differ in length.
type FocusManager struct {
	Grid     [][]Focusable
	Pos      Position
	OnChange func(from, to Position)
}

// NewFocusManager focuses the widget at (0, 0).
// Panics if the grid has no columns or any column is empty.
func NewFocusManager(grid [][]Focusable) *FocusManager {
	if len(grid) == 0 {
		panic("ui: focus grid has no columns")
	}
	for x, col := range grid {
		if len(col) == 0 {
			panic(fmt.Sprintf("ui: focus grid column %d is empty", x))
		}
	}
	f := &FocusManager{Grid: grid}
	for _, col := range grid {
		for _, w := range col {
			w.SetFocused(false)
		}
	}
	grid[0][0].SetFocused(true)
	return f
}

// Columns returns the number of columns in the grid.
func (f *FocusManager) Columns() int {
	return len(f.Grid)
}

// Rows returns the number of rows in column x.
func (f *FocusManager) Rows(x int) int {
	return len(f.Grid[x])
}

// Current returns the widget at the focus position.
func (f *FocusManager) Current() Focusable {
	return f.Grid[f.Pos.X][f.Pos.Y]
}

// Move shifts focus one step in dir, clamping at the grid edges.
// Horizontal moves clamp the row into the destination column.
// Returns the new focus position.
func (f *FocusManager) Move(dir Direction) Position {
	from := f.Pos
	to := from
	switch dir {
	case DirUp:
		to.Y = max(from.Y-1, 0)
	case DirDown:
		to.Y = min(from.Y+1, f.Rows(from.X)-1)
	case DirLeft:
		to.X = max(from.X-1, 0)
		to.Y = min(from.Y, f.Rows(to.X)-1)
	case DirRight:
		to.X = min(from.X+1, f.Columns()-1)
		to.Y = min(from.Y, f.Rows(to.X)-1)
	default:
		to = Position{}
	}

	f.Grid[from.X][from.Y].SetFocused(false)
	f.Grid[to.X][to.Y].SetFocused(true)
	f.Pos = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return to
}

// Activate returns the focused widget's command, or nil when the widget
// is not focused or has nothing to run.
func (f *FocusManager) Activate() tea.Cmd {
	w := f.Current()
	if !w.Focused() {
		return nil
	}
	a, ok := w.(Activator)
	if !ok {
		return nil
	}
	return a.Activate()
}
