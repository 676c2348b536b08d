// Package tuitest builds Bubble Tea messages and cleans rendered output for
// TUI tests.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape codes and trailing spaces from every line.
func StripANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// KeyPress creates a press of the printable key s, e.g. "j" or "?".
func KeyPress(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: s, Code: []rune(s)[0]}
}

// KeyCtrl creates a ctrl+r press.
func KeyCtrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl})
}

// KeyCode creates a press of a non-printable key such as tea.KeyEnter.
func KeyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
