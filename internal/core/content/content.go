// Package content turns decoded review records into display-ready item
// content that is independent of any concrete layout.
package content

import (
	lipgloss "charm.land/lipgloss/v2"
	"github.com/google/uuid"
)

// DefaultMaxLines is how many body lines an item shows before it is expanded.
const DefaultMaxLines = 3

// StyledText is text paired with the style it is drawn with.
type StyledText struct {
	Text  string
	Style lipgloss.Style
}

// Plain returns unstyled text.
func Plain(s string) StyledText {
	return StyledText{Text: s, Style: lipgloss.NewStyle()}
}

// IsEmpty reports whether there is no text to draw.
func (t StyledText) IsEmpty() bool {
	return t.Text == ""
}

// Render draws the text with its style.
func (t StyledText) Render() string {
	return t.Style.Render(t.Text)
}

// ItemContent is the normalized representation of one review. Everything
// except MaxLines is fixed once built.
type ItemContent struct {
	ID        uuid.UUID
	Body      StyledText
	CreatedAt StyledText
	Author    StyledText
	Rating    Rating
	AvatarURL string
	PhotoURLs []string

	// MaxLines bounds how many body lines are shown; 0 means unlimited.
	// Callers that change it must invalidate the item's cached layout.
	MaxLines int
}

// Expanded reports whether the body is shown without a line limit.
func (c *ItemContent) Expanded() bool {
	return c.MaxLines == 0
}
