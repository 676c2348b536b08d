package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/reviewdeck/internal/core/config"
	"github.com/hay-kot/reviewdeck/internal/printer"
	"github.com/hay-kot/reviewdeck/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "reviewdeck config validate [options]",
				Description: "Validates the configuration file, checking field values, the theme name, and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationIssue is one failed check.
type validationIssue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	issues := cmd.validate()

	if cmd.format == "json" {
		out := struct {
			Valid  bool              `json:"valid"`
			Config string            `json:"config"`
			Errors []validationIssue `json:"errors,omitempty"`
		}{
			Valid:  len(issues) == 0,
			Config: cmd.flags.ConfigPath,
			Errors: issues,
		}
		if err := iojson.WriteIndent(c.Root().Writer, out); err != nil {
			return err
		}
	} else {
		p := printer.Ctx(ctx)
		for _, issue := range issues {
			if issue.Field == "" {
				p.Errorf("%s", issue.Message)
				continue
			}
			p.Errorf("%s: %s", issue.Field, issue.Message)
		}

		p.Printf("")
		if len(issues) == 0 {
			p.Successf("Configuration is valid")
			return nil
		}
		p.Errorf("%d error(s) found", len(issues))
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// validate reloads the configuration so load errors surface as issues
// instead of aborting the command.
func (cmd *ConfigValidateCmd) validate() []validationIssue {
	cfg, err := config.Load(cmd.flags.ConfigPath, cmd.flags.DataDir)
	if err == nil {
		err = cfg.ValidateDeep(cmd.flags.ConfigPath)
	}
	return toIssues(err)
}

func toIssues(err error) []validationIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationIssue{{Message: err.Error()}}
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}
