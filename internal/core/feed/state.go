// Package feed owns the paginated list of review items and the small state
// machine that decides when the next page is requested.
package feed

import (
	"github.com/hay-kot/reviewdeck/internal/core/content"
	"github.com/hay-kot/reviewdeck/internal/core/layout"
)

// DefaultPageSize is the number of reviews requested per page.
const DefaultPageSize = 20

// DefaultPrefetchScreens is how many viewport heights from the end of the
// list a scroll must land within to request the next page.
const DefaultPrefetchScreens = 2.5

// LoadState describes whether a page request is in flight.
type LoadState int

const (
	LoadingFirst LoadState = iota
	Loaded
	LoadingNext
)

func (s LoadState) String() string {
	switch s {
	case LoadingFirst:
		return "loading-first"
	case Loaded:
		return "loaded"
	case LoadingNext:
		return "loading-next"
	default:
		return "unknown"
	}
}

// Item is one review with its cached layout.
type Item struct {
	Content *content.ItemContent
	Layout  *layout.Engine
}

// ComputeLayout returns the item's layout at maxWidth.
func (it *Item) ComputeLayout(maxWidth int) *layout.Result {
	return it.Layout.ComputeLayout(it.Content, maxWidth)
}

// State is a snapshot of the list. Items is shared with the controller and
// must not be modified by observers.
type State struct {
	Items      []*Item
	Limit      int
	Offset     int
	ShouldLoad bool
	Load       LoadState
}
