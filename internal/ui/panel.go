package ui

// Panel hosts a View in a named area of a GridLayout.
type Panel struct {
	ID   string
	View View
	Area Area
}

// Area places a panel on a grid row, starting at column Col and spanning
// ColSpan columns (at least one).
type Area struct {
	Col, Row int
	ColSpan  int
}

func (a Area) span() int {
	return max(a.ColSpan, 1)
}
