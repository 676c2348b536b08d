package content

import (
	"fmt"
	"slices"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/hay-kot/reviewdeck/internal/core/review"
)

// Styles groups the text styles applied when building content.
type Styles struct {
	Body      lipgloss.Style
	CreatedAt lipgloss.Style
	Author    lipgloss.Style
	Count     lipgloss.Style
	StarOn    lipgloss.Style
	StarOff   lipgloss.Style
}

// Builder converts review records into item content.
type Builder struct {
	styles   Styles
	ratings  *RatingRenderer
	maxLines int
	newID    func() uuid.UUID
}

// NewBuilder creates a builder. maxLines <= 0 falls back to DefaultMaxLines.
func NewBuilder(styles Styles, maxLines int) *Builder {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Builder{
		styles:   styles,
		ratings:  NewRatingRenderer(styles.StarOn, styles.StarOff),
		maxLines: maxLines,
		newID:    uuid.New,
	}
}

// Build creates the content for one record with a fresh identifier.
func (b *Builder) Build(r review.Record) *ItemContent {
	return &ItemContent{
		ID:        b.newID(),
		Body:      StyledText{Text: r.Text, Style: b.styles.Body},
		CreatedAt: StyledText{Text: r.Created, Style: b.styles.CreatedAt},
		Author:    StyledText{Text: r.AuthorName(), Style: b.styles.Author},
		Rating:    b.ratings.Rating(r.Rating),
		AvatarURL: r.AvatarURL,
		PhotoURLs: slices.Clone(r.PhotoURLs),
		MaxLines:  b.maxLines,
	}
}

// CountText renders the trailing "N reviews" summary.
func (b *Builder) CountText(n int) StyledText {
	noun := "reviews"
	if n == 1 {
		noun = "review"
	}
	return StyledText{Text: fmt.Sprintf("%d %s", n, noun), Style: b.styles.Count}
}
