package layout

import (
	"github.com/hay-kot/reviewdeck/internal/core/content"
)

// Result is the computed geometry of one item at one width.
type Result struct {
	Avatar     Rect
	AuthorName Rect
	Rating     Rect
	Photos     []Rect
	Body       Rect
	// ShowMore is only meaningful when HasShowMore is true.
	ShowMore    Rect
	HasShowMore bool
	CreatedAt   Rect
	Height      int
}

// Engine computes and caches the layout of a single item. A cached result
// is returned until Invalidate is called or a different width is requested.
// Engines are not safe for concurrent use.
type Engine struct {
	measurer Measurer
	metrics  Metrics

	cached      *Result
	cachedWidth int
}

// New creates an engine for one item.
func New(measurer Measurer, metrics Metrics) *Engine {
	return &Engine{measurer: measurer, metrics: metrics}
}

// ComputeLayout returns the layout of c at maxWidth. Repeated calls with no
// intervening Invalidate return the same *Result.
func (e *Engine) ComputeLayout(c *content.ItemContent, maxWidth int) *Result {
	if e.cached != nil && e.cachedWidth == maxWidth {
		return e.cached
	}

	e.cached = e.compute(c, maxWidth)
	e.cachedWidth = maxWidth
	return e.cached
}

// Height is shorthand for ComputeLayout(c, maxWidth).Height.
func (e *Engine) Height(c *content.ItemContent, maxWidth int) int {
	return e.ComputeLayout(c, maxWidth).Height
}

// Invalidate discards the cached result. It must be called after the
// item's MaxLines changes.
func (e *Engine) Invalidate() {
	e.cached = nil
}

// Cached reports whether a result is currently cached.
func (e *Engine) Cached() bool {
	return e.cached != nil
}

func (e *Engine) compute(c *content.ItemContent, maxWidth int) *Result {
	m := e.metrics
	res := &Result{}

	res.Avatar = At(m.Insets.Left, m.Insets.Top, m.AvatarSize)

	textX, textW := m.TextColumn(maxWidth)

	res.AuthorName = At(textX, m.Insets.Top, e.measurer.Measure(c.Author, textW, 0))
	y := res.AuthorName.MaxY() + m.NameToRating

	res.Rating = At(textX, y, m.RatingSize)

	if len(c.PhotoURLs) > 0 {
		y = res.Rating.MaxY() + m.RatingToPhotos
		n := min(len(c.PhotoURLs), m.PhotoCap)
		res.Photos = make([]Rect, n)
		for i := range n {
			x := textX + i*(m.PhotoSize.W+m.PhotoSpacing)
			res.Photos[i] = At(x, y, m.PhotoSize)
		}
		y += m.PhotoSize.H + m.PhotosToText
	} else {
		y = res.Rating.MaxY() + m.RatingToText
	}

	if !c.Body.IsEmpty() {
		clamped := e.measurer.Measure(c.Body, textW, c.MaxLines)
		full := e.measurer.Measure(c.Body, textW, 0)
		res.HasShowMore = c.MaxLines != 0 && full.H > clamped.H

		res.Body = At(textX, y, clamped)
		y = res.Body.MaxY() + m.TextToNext
	}

	if res.HasShowMore {
		label := content.Plain(m.ShowMoreLabel)
		res.ShowMore = At(textX, y, e.measurer.Measure(label, textW, 1))
		y = res.ShowMore.MaxY() + m.ShowMoreToCreated
	}

	res.CreatedAt = At(textX, y, e.measurer.Measure(c.CreatedAt, textW, 0))
	res.Height = res.CreatedAt.MaxY() + m.Insets.Bottom

	return res
}

// CountHeight returns the height of the trailing summary row.
func CountHeight(measurer Measurer, metrics Metrics, text content.StyledText, maxWidth int) int {
	w := max(maxWidth-metrics.Insets.Left-metrics.Insets.Right, 1)
	return measurer.Measure(text, w, 0).H + metrics.Insets.Top + metrics.Insets.Bottom
}
