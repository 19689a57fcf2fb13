package ui

import "github.com/mattn/go-runewidth"

// truncateString truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// padRight pads s with spaces to exactly width display columns.
func padRight(s string, width int) string {
	s = truncateString(s, width)
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		for i := 0; i < gap; i++ {
			s += " "
		}
	}
	return s
}
