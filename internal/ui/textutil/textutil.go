// Package textutil provides unicode-aware text fitting for widget boxes.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is appended when a line is cut.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(TruncateEllipsis)
	if avail < 0 {
		return TruncateEllipsis
	}

	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + TruncateEllipsis
}

// TruncateLines truncates every line of s to maxWidth and keeps at most maxLines lines.
func TruncateLines(s string, maxWidth, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for i, l := range lines {
		lines[i] = Truncate(l, maxWidth)
	}
	return strings.Join(lines, "\n")
}
