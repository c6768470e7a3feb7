package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GridLayout arranges panels on fixed column and row tracks.
// Columns and Rows hold track sizes in cells. ColGap and RowGap separate
// tracks; Gutter pads the whole grid.
type GridLayout struct {
	Columns []int
	Rows    []int
	ColGap  int
	RowGap  int
	Gutter  int
}

// DefaultGridLayout is two 10-cell columns over rows of 4, 4, 5 and 5 cells.
func DefaultGridLayout() GridLayout {
	return GridLayout{
		Columns: []int{10, 10},
		Rows:    []int{4, 4, 5, 5},
		ColGap:  2,
		RowGap:  1,
		Gutter:  1,
	}
}

// Size returns the rendered width and height of the grid including the gutter.
func (g GridLayout) Size() (w, h int) {
	w = sumTracks(g.Columns, g.ColGap) + 2*g.Gutter
	h = sumTracks(g.Rows, g.RowGap) + 2*g.Gutter
	return w, h
}

// Contains reports whether the area's origin cell lies on the tracks.
func (g GridLayout) Contains(a Area) bool {
	return a.Row >= 0 && a.Row < len(g.Rows) && a.Col >= 0 && a.Col < len(g.Columns)
}

// Fits reports whether every panel's area lies on the tracks.
func (g GridLayout) Fits(panels []Panel) bool {
	for _, p := range panels {
		if !g.Contains(p.Area) {
			return false
		}
	}
	return true
}

// Bounds returns the position and size of an area, relative to the grid
// origin and excluding the gutter. Spans past the last column are clipped.
// An area outside the tracks has zero bounds.
func (g GridLayout) Bounds(a Area) (x, y, w, h int) {
	if !g.Contains(a) {
		return 0, 0, 0, 0
	}
	end := min(a.Col+a.span(), len(g.Columns))
	x = sumTracks(g.Columns[:a.Col], g.ColGap)
	if a.Col > 0 {
		x += g.ColGap
	}
	w = sumTracks(g.Columns[a.Col:end], g.ColGap)
	y = sumTracks(g.Rows[:a.Row], g.RowGap)
	if a.Row > 0 {
		y += g.RowGap
	}
	h = g.Rows[a.Row]
	return x, y, w, h
}

// Render draws every panel into its area. Panels outside the tracks are skipped.
func (g GridLayout) Render(panels []Panel) string {
	byRow := make([][]Panel, len(g.Rows))
	for _, p := range panels {
		if !g.Contains(p.Area) {
			continue
		}
		byRow[p.Area.Row] = append(byRow[p.Area.Row], p)
	}

	gridW := sumTracks(g.Columns, g.ColGap)
	rows := make([]string, 0, 2*len(g.Rows))
	for r, row := range byRow {
		if r > 0 && g.RowGap > 0 {
			rows = append(rows, blank(gridW, g.RowGap))
		}
		rows = append(rows, g.renderRow(row, g.Rows[r], gridW))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Padding(g.Gutter).Render(body)
}

func (g GridLayout) renderRow(row []Panel, height, gridW int) string {
	sort.Slice(row, func(i, j int) bool { return row[i].Area.Col < row[j].Area.Col })

	var cells []string
	cursor := 0
	for _, p := range row {
		x, _, w, h := g.Bounds(p.Area)
		if x < cursor {
			continue // overlaps the previous panel
		}
		if x > cursor {
			cells = append(cells, blank(x-cursor, h))
		}
		if s, ok := p.View.(Sizer); ok {
			s.SetSize(w, h)
		}
		cells = append(cells, fit(p.View.View(), w, h))
		cursor = x + w
	}
	if cursor < gridW {
		cells = append(cells, blank(gridW-cursor, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// fit pads or clips content to exactly w x h cells.
func fit(content string, w, h int) string {
	return lipgloss.NewStyle().
		Width(w).MaxWidth(w).
		Height(h).MaxHeight(h).
		Render(content)
}

func blank(w, h int) string {
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func sumTracks(tracks []int, gap int) int {
	if len(tracks) == 0 {
		return 0
	}
	total := gap * (len(tracks) - 1)
	for _, t := range tracks {
		total += t
	}
	return total
}
