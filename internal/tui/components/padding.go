package components

import "strings"

const maxCachedPad = 256

// spaces backs Pad for widths up to maxCachedPad.
var spaces = strings.Repeat(" ", maxCachedPad)

// Pad returns a string of n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= maxCachedPad {
		return spaces[:n]
	}
	return strings.Repeat(" ", n)
}

// Blank returns a w x h block of spaces, h lines joined by newlines.
func Blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := Pad(w)
	var b strings.Builder
	b.Grow((w + 1) * h)
	for i := range h {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}
