package commands

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hay-kot/reviewdeck/internal/core/config"
	"github.com/hay-kot/reviewdeck/internal/core/content"
	"github.com/hay-kot/reviewdeck/internal/core/feed"
	"github.com/hay-kot/reviewdeck/internal/core/imageload"
	"github.com/hay-kot/reviewdeck/internal/core/layout"
	"github.com/hay-kot/reviewdeck/internal/core/review"
	"github.com/hay-kot/reviewdeck/internal/core/styles"
	"github.com/hay-kot/reviewdeck/internal/data/db"
	"github.com/hay-kot/reviewdeck/internal/data/stores"
	"github.com/hay-kot/reviewdeck/pkg/mainloop"
)

// dispatchQueueSize bounds pending main loop work before Dispatch blocks.
const dispatchQueueSize = 256

// App holds resources shared between commands. The database is opened on
// first use so commands that never touch it do not create it.
type App struct {
	flags *Flags

	mu sync.Mutex
	db *db.DB
}

// NewApp creates an App reading configuration from flags.
func NewApp(flags *Flags) *App {
	return &App{flags: flags}
}

// DB opens the review database on first call.
func (a *App) DB() (*db.DB, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.db != nil {
		return a.db, nil
	}

	cfg := a.flags.Config
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	database, err := db.Open(cfg.DataDir, cfg.Database.OpenOptions())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.db = database
	return a.db, nil
}

// ReviewStore returns the store over the review database.
func (a *App) ReviewStore() (*stores.ReviewStore, error) {
	database, err := a.DB()
	if err != nil {
		return nil, err
	}
	return stores.NewReviewStore(database), nil
}

// Provider builds the review source selected by the configuration.
func (a *App) Provider() (review.Provider, error) {
	src := a.flags.Config.Source
	switch src.Kind {
	case config.SourceFile:
		return review.NewFileProvider(src.Path, src.Latency), nil
	case config.SourceHTTP:
		return review.NewHTTPProvider(src.URL, src.Timeout), nil
	case config.SourceSQLite:
		return a.ReviewStore()
	default:
		return nil, fmt.Errorf("unknown source %q", src.Kind)
	}
}

// Controller wires a feed controller to provider.
func (a *App) Controller(provider review.Provider, queue mainloop.Dispatcher, logger zerolog.Logger) *feed.Controller {
	cfg := a.flags.Config
	return feed.NewController(feed.Deps{
		Provider:   provider,
		Builder:    content.NewBuilder(styles.Content(), cfg.Layout.MaxLines),
		Measurer:   layout.CellMeasurer{},
		Metrics:    cfg.Metrics(),
		Dispatcher: queue,
		Logger:     logger,
	}, feed.Options{
		PageSize:        cfg.Pagination.PageSize,
		PrefetchScreens: cfg.Pagination.PrefetchScreens,
	})
}

// Images creates an image service running under ctx.
func (a *App) Images(ctx context.Context, queue mainloop.Dispatcher, logger zerolog.Logger) *imageload.Service {
	cfg := a.flags.Config.Images
	return imageload.NewService(ctx,
		imageload.NewCache(),
		imageload.NewHTTPFetcher(cfg.Timeout, cfg.MaxBytes),
		queue,
		logger,
		imageload.Options{Workers: cfg.Workers, Coalesce: cfg.Coalesce},
	)
}

// Close releases the database if it was opened.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
