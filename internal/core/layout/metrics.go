package layout

// DefaultShowMoreLabel is the text of the "show more" affordance.
const DefaultShowMoreLabel = "Show more..."

// Metrics holds the fixed sizes and spacings used when laying out an item.
type Metrics struct {
	Insets Insets

	AvatarSize Size
	RatingSize Size
	PhotoSize  Size
	PhotoCap   int

	AvatarToName      int
	NameToRating      int
	RatingToPhotos    int
	PhotoSpacing      int
	PhotosToText      int
	RatingToText      int
	TextToNext        int
	ShowMoreToCreated int

	ShowMoreLabel string
}

// DefaultMetrics returns the standard item metrics.
func DefaultMetrics() Metrics {
	return Metrics{
		Insets:     Insets{Top: 1, Left: 2, Bottom: 1, Right: 2},
		AvatarSize: Size{W: 6, H: 3},
		RatingSize: Size{W: 5, H: 1},
		PhotoSize:  Size{W: 8, H: 4},
		PhotoCap:   5,

		AvatarToName:      2,
		NameToRating:      0,
		RatingToPhotos:    1,
		PhotoSpacing:      1,
		PhotosToText:      1,
		RatingToText:      0,
		TextToNext:        1,
		ShowMoreToCreated: 0,

		ShowMoreLabel: DefaultShowMoreLabel,
	}
}

// TextColumn returns the x position and width of the column to the right
// of the avatar for an item maxWidth cells wide. The width is at least 1.
func (m Metrics) TextColumn(maxWidth int) (x, width int) {
	x = m.Insets.Left + m.AvatarSize.W + m.AvatarToName
	width = max(maxWidth-x-m.Insets.Right, 1)
	return x, width
}
