package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// truncateLine forces s to at most width columns (ANSI-aware), replacing the
// last visible cell with an ellipsis when it has to cut.
func truncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return xansi.Cut(s, 0, 1)
	}
	return xansi.Cut(s, 0, width-1) + "…"
}

// padLine forces s to exactly width columns so row backgrounds span the pane.
func padLine(s string, width int) string {
	s = truncateLine(s, width)
	if w := xansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
