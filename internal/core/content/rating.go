package content

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
)

// MaxRating is the number of glyph cells in a rating.
const MaxRating = 5

const (
	filledStar = "★"
	emptyStar  = "☆"
)

// Rating is an integer score and its pre-rendered glyph.
type Rating struct {
	Value int
	Glyph string
}

// RatingRenderer renders ratings into fixed-width glyph strings. Glyphs are
// memoized per value since there are only MaxRating+1 of them.
type RatingRenderer struct {
	filled lipgloss.Style
	empty  lipgloss.Style
	glyphs [MaxRating + 1]string
}

// NewRatingRenderer creates a renderer using the given star styles.
func NewRatingRenderer(filled, empty lipgloss.Style) *RatingRenderer {
	r := &RatingRenderer{filled: filled, empty: empty}
	for v := 0; v <= MaxRating; v++ {
		r.glyphs[v] = r.filled.Render(strings.Repeat(filledStar, v)) +
			r.empty.Render(strings.Repeat(emptyStar, MaxRating-v))
	}
	return r
}

// Rating clamps value to [0, MaxRating] and returns its glyph.
func (r *RatingRenderer) Rating(value int) Rating {
	v := min(max(value, 0), MaxRating)
	return Rating{Value: v, Glyph: r.glyphs[v]}
}
