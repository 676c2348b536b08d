package commands

import (
	"context"
	"fmt"
	"os"
	"sync"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/reviewdeck/internal/core/feed"
	"github.com/hay-kot/reviewdeck/internal/core/logging"
	"github.com/hay-kot/reviewdeck/internal/core/review"
	"github.com/hay-kot/reviewdeck/pkg/iojson"
	"github.com/hay-kot/reviewdeck/pkg/mainloop"
)

type LsCmd struct {
	flags *Flags
	app   *App

	// flags
	width      int
	pages      int
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List feed rows with their computed layout",
		UsageText: "reviewdeck ls [--width N] [--pages N] [--json]",
		Description: `Loads pages from the configured source the same way the feed does
and prints one line per row with the height it occupies at --width.

Use --json for one JSON object per row.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "width",
				Usage:       "layout width in terminal cells",
				Value:       80,
				Destination: &cmd.width,
			},
			&cli.IntFlag{
				Name:        "pages",
				Usage:       "number of pages to load",
				Value:       1,
				Destination: &cmd.pages,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.width <= 0 {
		return fmt.Errorf("--width must be positive")
	}

	provider, err := cmd.app.Provider()
	if err != nil {
		return fmt.Errorf("create review source: %w", err)
	}

	rec := &recordingProvider{Provider: provider}
	queue := mainloop.NewQueue(dispatchQueueSize)
	ctrl := cmd.app.Controller(rec, queue, logging.Component("feed"))

	if err := loadPages(ctx, ctrl, queue, rec, cmd.pages); err != nil {
		return err
	}

	rows := buildRowInfo(ctrl, cmd.width)
	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, r := range rows {
			if err := iojson.WriteLine(out, r); err != nil {
				return fmt.Errorf("encode row: %w", err)
			}
		}
		return nil
	}

	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "No reviews found\n")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tKIND\tAUTHOR\tRATING\tPHOTOS\tHEIGHT")
	for _, r := range rows {
		if r.Kind == rowKindCount {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t\t\t%d\n", r.Index, r.Kind, r.Text, r.Height)
			continue
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\n", r.Index, r.Kind, r.Author, r.Rating, r.Photos, r.Height)
	}
	_ = w.Flush()

	return nil
}

// loadPages requests up to pages pages, running each completion on the
// calling goroutine. It stops early at the end of the feed and returns the
// provider error of a failed page.
func loadPages(ctx context.Context, ctrl *feed.Controller, queue *mainloop.Queue, rec *recordingProvider, pages int) error {
	for range pages {
		if !ctrl.RequestPage(ctx) {
			return nil
		}
		for ctrl.State().Load != feed.Loaded {
			if err := queue.RunNext(ctx); err != nil {
				return err
			}
		}
		if err := rec.LastErr(); err != nil {
			return fmt.Errorf("load page: %w", err)
		}
	}
	return nil
}

const (
	rowKindReview = "review"
	rowKindCount  = "count"
)

// rowInfo is the output format for reviewdeck ls.
type rowInfo struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Author  string `json:"author,omitempty"`
	Created string `json:"created,omitempty"`
	Rating  int    `json:"rating"`
	Photos  int    `json:"photos"`
	Text    string `json:"text,omitempty"`
	Height  int    `json:"height"`
}

func buildRowInfo(ctrl *feed.Controller, width int) []rowInfo {
	rows := ctrl.Rows()
	out := make([]rowInfo, 0, len(rows))
	for i, row := range rows {
		info := rowInfo{
			Index:  i,
			Height: row.Height(ctrl.Measurer(), ctrl.Metrics(), width),
		}
		switch row.Kind {
		case feed.RowReview:
			c := row.Item.Content
			info.Kind = rowKindReview
			info.Author = c.Author.Text
			info.Created = c.CreatedAt.Text
			info.Rating = c.Rating.Value
			info.Photos = len(c.PhotoURLs)
		case feed.RowCount:
			info.Kind = rowKindCount
			info.Text = row.CountText.Text
		}
		out = append(out, info)
	}
	return out
}

// recordingProvider remembers the error of the most recent page request.
type recordingProvider struct {
	review.Provider

	mu  sync.Mutex
	err error
}

func (p *recordingProvider) Page(ctx context.Context, offset, limit int) (review.Page, error) {
	page, err := p.Provider.Page(ctx, offset, limit)
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
	return page, err
}

func (p *recordingProvider) LastErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
