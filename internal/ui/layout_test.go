package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillView renders its area filled with a single rune and records its size.
type fillView struct {
	r    rune
	w, h int
}

func (v *fillView) Init() tea.Cmd                  { return nil }
func (v *fillView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }
func (v *fillView) SetSize(w, h int)               { v.w, v.h = w, h }
func (v *fillView) View() string {
	line := strings.Repeat(string(v.r), v.w)
	lines := make([]string, v.h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func TestGridLayout_Bounds(t *testing.T) {
	g := DefaultGridLayout()
	tests := []struct {
		name       string
		area       Area
		x, y, w, h int
	}{
		{"clock spans both columns", Area{Col: 0, Row: 0, ColSpan: 2}, 0, 0, 22, 4},
		{"timer", Area{Col: 0, Row: 1, ColSpan: 2}, 0, 5, 22, 4},
		{"start", Area{Col: 0, Row: 2}, 0, 10, 10, 5},
		{"stop", Area{Col: 1, Row: 2}, 12, 10, 10, 5},
		{"status", Area{Col: 0, Row: 3, ColSpan: 2}, 0, 16, 22, 5},
		{"span clipped", Area{Col: 1, Row: 0, ColSpan: 5}, 12, 0, 10, 4},
		{"row past last track", Area{Col: 0, Row: 4}, 0, 0, 0, 0},
		{"column past last track", Area{Col: 2, Row: 0}, 0, 0, 0, 0},
		{"negative row", Area{Col: 0, Row: -1}, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := g.Bounds(tt.area)
			assert.Equal(t, []int{tt.x, tt.y, tt.w, tt.h}, []int{x, y, w, h})
		})
	}
}

func TestGridLayout_Fits(t *testing.T) {
	g := GridLayout{Columns: []int{10, 10}, Rows: []int{4, 4, 5}}
	assert.True(t, g.Fits([]Panel{{Area: Area{Col: 1, Row: 2}}}))
	assert.False(t, g.Fits([]Panel{
		{Area: Area{Col: 0, Row: 0}},
		{Area: Area{Col: 0, Row: 3}},
	}))
}

func TestGridLayout_Size(t *testing.T) {
	w, h := DefaultGridLayout().Size()
	assert.Equal(t, 24, w)
	assert.Equal(t, 23, h)
}

func TestGridLayout_Render(t *testing.T) {
	g := DefaultGridLayout()
	a, b, c := &fillView{r: 'a'}, &fillView{r: 'b'}, &fillView{r: 'c'}
	out := g.Render([]Panel{
		{ID: "a", View: a, Area: Area{Col: 0, Row: 0, ColSpan: 2}},
		{ID: "b", View: b, Area: Area{Col: 0, Row: 2}},
		{ID: "c", View: c, Area: Area{Col: 1, Row: 2}},
	})

	w, h := g.Size()
	assert.Equal(t, w, lipgloss.Width(out))
	assert.Equal(t, h, lipgloss.Height(out))
	assert.Equal(t, []int{22, 4}, []int{a.w, a.h})
	assert.Equal(t, []int{10, 5}, []int{b.w, b.h})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, h)
	// Gutter row, then the first grid row.
	assert.Equal(t, strings.Repeat(" ", w), lines[0])
	assert.Equal(t, " "+strings.Repeat("a", 22)+" ", lines[1])
	// Button row starts after two 4-cell rows and two 1-cell gaps.
	assert.Equal(t, " "+strings.Repeat("b", 10)+"  "+strings.Repeat("c", 10)+" ", lines[1+10])
}

func TestGridLayout_RenderSkipsOutOfRange(t *testing.T) {
	g := GridLayout{Columns: []int{3}, Rows: []int{1}}
	out := g.Render([]Panel{
		{ID: "x", View: &fillView{r: 'x'}, Area: Area{Col: 0, Row: 0}},
		{ID: "y", View: &fillView{r: 'y'}, Area: Area{Col: 4, Row: 0}},
		{ID: "z", View: &fillView{r: 'z'}, Area: Area{Col: 0, Row: 3}},
	})
	assert.Equal(t, "xxx", out)
}
