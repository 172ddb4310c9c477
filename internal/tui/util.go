package tui

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// padRight pads s with spaces to n display cells.
func padRight(s string, n int) string {
	w := runewidth.StringWidth(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}
