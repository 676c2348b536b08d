package components

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	assert.Empty(t, Pad(-1))
	assert.Empty(t, Pad(0))
	assert.Equal(t, "   ", Pad(3))
	assert.Len(t, Pad(300), 300)
}

func TestBlank(t *testing.T) {
	assert.Empty(t, Blank(0, 3))
	assert.Empty(t, Blank(3, 0))

	b := Blank(4, 3)
	assert.Equal(t, 4, lipgloss.Width(b))
	assert.Equal(t, 3, lipgloss.Height(b))
	assert.Equal(t, "    \n    \n    ", b)
}

func TestHelpDialog(t *testing.T) {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	disabled.SetEnabled(false)

	h := NewHelpDialog("Keys", []key.Binding{
		key.NewBinding(key.WithKeys("j"), key.WithHelp("j/↓", "next review")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		disabled,
	})

	view := h.View()
	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "next review")
	assert.Contains(t, view, "quit")
	assert.NotContains(t, view, "hidden")

	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	out := h.Overlay(bg, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(out))
	assert.Contains(t, out, "next review")
}
