// Package components provides reusable TUI components.
package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/reviewdeck/internal/core/styles"
)

// HelpDialog lists key bindings in a centered overlay.
type HelpDialog struct {
	title    string
	bindings []key.Binding
}

// NewHelpDialog creates a help dialog for bindings. Disabled bindings are
// skipped when rendering.
func NewHelpDialog(title string, bindings []key.Binding) *HelpDialog {
	return &HelpDialog{title: title, bindings: bindings}
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	keyWidth := 0
	for _, b := range h.bindings {
		if b.Enabled() {
			keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
		}
	}

	var lines []string
	for _, b := range h.bindings {
		if !b.Enabled() {
			continue
		}
		lines = append(lines, formatKeyDesc(b.Help().Key, b.Help().Desc, keyWidth+3))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.HelpTitleStyle.Render(h.title),
		"",
		strings.Join(lines, "\n"),
		styles.HelpFooterStyle.Render("esc/? close"),
	)

	return styles.ModalStyle.Render(content)
}

// Overlay renders the help dialog as a layer over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	centerX := max((width-modalW)/2, 0)
	centerY := max((height-modalH)/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

// formatKeyDesc pads key to keyWidth display cells before the description.
func formatKeyDesc(k, desc string, keyWidth int) string {
	paddedKey := k + Pad(keyWidth-lipgloss.Width(k))
	return styles.HelpKeyStyle.Render(paddedKey) + styles.HelpDescStyle.Render(desc)
}
