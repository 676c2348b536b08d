package tuitest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mbold\x1b[0m   \nplain  "
	assert.Equal(t, "bold\nplain", StripANSI(in))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "j", KeyPress("j").String())
	assert.Equal(t, "?", KeyPress("?").String())
	assert.Equal(t, "ctrl+d", KeyCtrl('d').String())
	assert.Equal(t, "enter", KeyCode(tea.KeyEnter).String())
	assert.Equal(t, "esc", KeyCode(tea.KeyEscape).String())
	assert.Equal(t, tea.WindowSizeMsg{Width: 3, Height: 4}, WindowSize(3, 4))
}
