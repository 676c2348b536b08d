package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/reviewdeck/internal/core/content"
)

// Measurer reports the bounding size of text laid out within maxWidth
// cells. maxLines == 0 means no line limit. Empty text measures as zero.
type Measurer interface {
	Measure(text content.StyledText, maxWidth, maxLines int) Size
}

// CellMeasurer measures text by word wrapping it to the terminal grid.
// Style frames (padding, borders) are not part of the measurement.
type CellMeasurer struct{}

var _ Measurer = CellMeasurer{}

// Measure implements Measurer.
func (CellMeasurer) Measure(text content.StyledText, maxWidth, maxLines int) Size {
	if text.IsEmpty() || maxWidth <= 0 {
		return Size{}
	}

	lines := Wrap(text.Text, maxWidth)
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return Size{W: w, H: len(lines)}
}

// Wrap breaks s into lines no wider than width cells, preferring word
// boundaries and hard-breaking words that do not fit. Existing newlines are
// kept.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	wrapped := ansi.Wrap(s, width, "")
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
