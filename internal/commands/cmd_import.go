package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/reviewdeck/internal/core/review"
	"github.com/hay-kot/reviewdeck/internal/printer"
	"github.com/hay-kot/reviewdeck/pkg/iojson"
)

type ImportCmd struct {
	flags *Flags
	app   *App

	reader  iojson.FileReader[review.Page]
	replace bool
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags, app *App) *ImportCmd {
	return &ImportCmd{
		flags:  flags,
		app:    app,
		reader: iojson.FileReader[review.Page]{Decode: review.DecodePage},
	}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Import a review payload into the local database",
		UsageText: "reviewdeck import [--replace] [-f file.json | file.json]",
		Description: `Reads a page payload ({"items": [...], "count": N}) and appends its items
to the SQLite database used by the sqlite source. Reads stdin when no file is given.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "replace",
				Usage:       "delete existing reviews before importing",
				Destination: &cmd.replace,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if path := c.Args().First(); path != "" {
		cmd.reader.SetFile(path)
	}

	page, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	store, err := cmd.app.ReviewStore()
	if err != nil {
		return err
	}

	if cmd.replace {
		if err := store.Clear(ctx); err != nil {
			return fmt.Errorf("clear reviews: %w", err)
		}
	}

	n, err := store.Import(ctx, page.Items)
	if err != nil {
		return fmt.Errorf("import reviews: %w", err)
	}

	total, err := store.Count(ctx)
	if err != nil {
		return err
	}

	p.Successf("Imported %d review(s), %d stored", n, total)
	return nil
}
