package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/reviewdeck/internal/core/content"
)

func TestCellMeasurer(t *testing.T) {
	m := CellMeasurer{}

	tests := []struct {
		name     string
		text     string
		width    int
		maxLines int
		want     Size
	}{
		{name: "empty", text: "", width: 10, want: Size{}},
		{name: "zero width", text: "abc", width: 0, want: Size{}},
		{name: "fits on one line", text: "hello", width: 10, want: Size{W: 5, H: 1}},
		{name: "wraps on words", text: "hello there world", width: 11, want: Size{W: 11, H: 2}},
		{name: "clamped", text: "aa bb cc dd", width: 2, maxLines: 2, want: Size{W: 2, H: 2}},
		{name: "unlimited", text: "aa bb cc dd", width: 2, maxLines: 0, want: Size{W: 2, H: 4}},
		{name: "keeps newlines", text: "one\ntwo", width: 20, want: Size{W: 3, H: 2}},
		{name: "hard breaks long words", text: "abcdefghij", width: 4, want: Size{W: 4, H: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Measure(content.Plain(tt.text), tt.width, tt.maxLines)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, Wrap("hello world", 6))
	assert.Nil(t, Wrap("hello", 0))
}
