package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/reviewdeck/internal/core/logging"
	"github.com/hay-kot/reviewdeck/internal/tui"
	"github.com/hay-kot/reviewdeck/pkg/mainloop"
	"github.com/hay-kot/reviewdeck/pkg/profiler"
)

type TuiCmd struct {
	flags *Flags
	app   *App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("REVIEWDECK_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	provider, err := cmd.app.Provider()
	if err != nil {
		return fmt.Errorf("create review source: %w", err)
	}

	queue := mainloop.NewQueue(dispatchQueueSize)
	ctx = logging.WithSource(ctx, string(cmd.flags.Config.Source.Kind))

	m := tui.New(ctx, tui.Options{
		Controller: cmd.app.Controller(provider, queue, logging.Component("feed")),
		Images:     cmd.app.Images(ctx, queue, logging.Component("images")),
		Queue:      queue,
		Logger:     logging.Component("tui"),
	})

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
