package feed

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hay-kot/reviewdeck/internal/core/content"
	"github.com/hay-kot/reviewdeck/internal/core/layout"
	"github.com/hay-kot/reviewdeck/internal/core/logging"
	"github.com/hay-kot/reviewdeck/internal/core/review"
	"github.com/hay-kot/reviewdeck/pkg/mainloop"
)

// Observer is notified with a snapshot after every state change.
type Observer func(State)

// Deps are the collaborators of a Controller.
type Deps struct {
	Provider   review.Provider
	Builder    *content.Builder
	Measurer   layout.Measurer
	Metrics    layout.Metrics
	Dispatcher mainloop.Dispatcher
	Logger     zerolog.Logger
}

// Options tunes a Controller.
type Options struct {
	PageSize        int
	PrefetchScreens float64
}

// Controller owns the review list and its load state. Every method must be
// called from the goroutine that drains Deps.Dispatcher; page fetches run
// in the background and their results are applied there.
type Controller struct {
	provider   review.Provider
	builder    *content.Builder
	measurer   layout.Measurer
	metrics    layout.Metrics
	dispatcher mainloop.Dispatcher
	log        zerolog.Logger

	prefetchScreens float64

	state       State
	loadedPages int
	observers   []Observer
}

// NewController creates a controller in the loading-first state with more
// pages assumed to exist.
func NewController(deps Deps, opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.PrefetchScreens <= 0 {
		opts.PrefetchScreens = DefaultPrefetchScreens
	}

	return &Controller{
		provider:        deps.Provider,
		builder:         deps.Builder,
		measurer:        deps.Measurer,
		metrics:         deps.Metrics,
		dispatcher:      deps.Dispatcher,
		log:             deps.Logger,
		prefetchScreens: opts.PrefetchScreens,
		state: State{
			Limit:      opts.PageSize,
			ShouldLoad: true,
			Load:       LoadingFirst,
		},
	}
}

// Subscribe registers fn for state change notifications.
func (c *Controller) Subscribe(fn Observer) {
	c.observers = append(c.observers, fn)
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// Measurer returns the measurer used for row heights.
func (c *Controller) Measurer() layout.Measurer {
	return c.measurer
}

// Metrics returns the metrics used for row heights.
func (c *Controller) Metrics() layout.Metrics {
	return c.metrics
}

// RequestPage fetches the next page unless a request is already in flight
// or the last page has been loaded. It reports whether a fetch was issued.
func (c *Controller) RequestPage(ctx context.Context) bool {
	if !c.state.ShouldLoad {
		return false
	}
	c.state.ShouldLoad = false

	if c.state.Offset == 0 {
		c.state.Load = LoadingFirst
	} else {
		c.state.Load = LoadingNext
	}
	c.notify()

	offset, limit := c.state.Offset, c.state.Limit
	ctx = logging.WithRequestID(ctx, uuid.NewString())
	c.log.Debug().Ctx(ctx).Int("offset", offset).Int("limit", limit).Msg("requesting page")

	go func() {
		page, err := c.provider.Page(ctx, offset, limit)
		c.dispatcher.Dispatch(func() { c.pageLoaded(ctx, offset, page, err) })
	}()

	return true
}

func (c *Controller) pageLoaded(ctx context.Context, offset int, page review.Page, err error) {
	c.state.Load = Loaded

	if err != nil {
		// Stay on the same offset so the next trigger re-requests this range.
		c.log.Warn().Ctx(ctx).Err(err).Int("offset", offset).Msg("page request failed")
		c.state.ShouldLoad = true
		c.notify()
		return
	}

	for _, rec := range page.Items {
		c.state.Items = append(c.state.Items, &Item{
			Content: c.builder.Build(rec),
			Layout:  layout.New(c.measurer, c.metrics),
		})
	}
	c.state.Offset += c.state.Limit
	c.state.ShouldLoad = c.state.Offset < page.Count
	c.loadedPages++

	c.log.Debug().Ctx(ctx).
		Int("received", len(page.Items)).
		Int("items", len(c.state.Items)).
		Int("count", page.Count).
		Bool("more", c.state.ShouldLoad).
		Msg("page loaded")

	c.notify()
}

// Expand removes the line limit of the item with the given id and discards
// its cached layout. It reports whether the item was found.
func (c *Controller) Expand(id uuid.UUID) bool {
	for _, it := range c.state.Items {
		if it.Content.ID != id {
			continue
		}
		it.Content.MaxLines = 0
		it.Layout.Invalidate()
		c.notify()
		return true
	}
	return false
}

// Rows returns the presentation rows: every review followed, once a page
// has loaded, by a count row built from the current number of reviews.
func (c *Controller) Rows() []Row {
	rows := make([]Row, 0, len(c.state.Items)+1)
	for _, it := range c.state.Items {
		rows = append(rows, Row{Kind: RowReview, Item: it})
	}
	if c.loadedPages > 0 {
		rows = append(rows, Row{Kind: RowCount, CountText: c.builder.CountText(len(c.state.Items))})
	}
	return rows
}

// ShouldPrefetch reports whether a scroll that will come to rest at
// projectedOffset is close enough to the end of the content to load more.
func (c *Controller) ShouldPrefetch(viewportHeight, contentHeight, projectedOffset float64) bool {
	remaining := contentHeight - viewportHeight - projectedOffset
	return remaining <= viewportHeight*c.prefetchScreens
}

// ScrollEnded requests the next page when ShouldPrefetch is true and
// reports whether a fetch was issued.
func (c *Controller) ScrollEnded(ctx context.Context, viewportHeight, contentHeight, projectedOffset float64) bool {
	if !c.ShouldPrefetch(viewportHeight, contentHeight, projectedOffset) {
		return false
	}
	return c.RequestPage(ctx)
}

func (c *Controller) notify() {
	snapshot := c.state
	for _, fn := range c.observers {
		fn(snapshot)
	}
}
