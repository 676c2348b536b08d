package feed

import (
	"fmt"

	"github.com/hay-kot/reviewdeck/internal/core/content"
	"github.com/hay-kot/reviewdeck/internal/core/layout"
)

// RowKind tags the variant held by a Row.
type RowKind int

const (
	RowReview RowKind = iota
	RowCount
)

// Row is either a review (Item set) or the trailing count summary
// (CountText set).
type Row struct {
	Kind      RowKind
	Item      *Item
	CountText content.StyledText
}

// Height returns the row's height at maxWidth.
func (r Row) Height(measurer layout.Measurer, metrics layout.Metrics, maxWidth int) int {
	switch r.Kind {
	case RowReview:
		return r.Item.ComputeLayout(maxWidth).Height
	case RowCount:
		return layout.CountHeight(measurer, metrics, r.CountText, maxWidth)
	default:
		panic(fmt.Sprintf("feed: unknown row kind %d", r.Kind))
	}
}

// ContentHeight sums the heights of rows at maxWidth.
func ContentHeight(rows []Row, measurer layout.Measurer, metrics layout.Metrics, maxWidth int) int {
	total := 0
	for _, r := range rows {
		total += r.Height(measurer, metrics, maxWidth)
	}
	return total
}
