package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncateEllipsis is the unicode ellipsis used when labels are shortened.
const truncateEllipsis = "…"

// visualWidth returns the number of terminal columns the string occupies.
func visualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// truncate shortens s to at most maxWidth visual columns, appending an
// ellipsis when anything was cut.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - runewidth.StringWidth(truncateEllipsis)
	if avail < 0 {
		return truncateEllipsis
	}
	var out []rune
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + truncateEllipsis
}

// padRightStyled pads a string that may carry ANSI styling. Content wider
// than the target is left untouched; the caller truncates beforehand when
// that matters.
func padRightStyled(s string, targetWidth int) string {
	w := lipgloss.Width(s)
	if w >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-w)
}
