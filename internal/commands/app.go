package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-adminui/internal/config"
	"github.com/goliatone/go-adminui/internal/logging"
	"github.com/goliatone/go-adminui/pkg/prompt"
)

// NewApp builds the adminui root command. The returned closer releases the
// log file once the command has run.
func NewApp(flags *Flags, version string, driver prompt.PromptDriver) (*cli.Command, func()) {
	logCloser := func() {}

	app := &cli.Command{
		Name:      "adminui",
		Usage:     "Check, validate and fill declarative admin pages",
		UsageText: "adminui [global options] command [command options]",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "env-file",
				Usage:       "dotenv file with ADMINUI_* settings",
				Destination: &flags.EnvFile,
			},
			&cli.StringFlag{
				Name:        "definitions",
				Aliases:     []string{"d"},
				Usage:       "directory of page definition files",
				Value:       flags.Definitions,
				Destination: &flags.Definitions,
			},
			&cli.StringFlag{
				Name:        "locale",
				Usage:       "locale for validation messages",
				Value:       flags.Locale,
				Destination: &flags.Locale,
			},
			&cli.StringFlag{
				Name:        "translations",
				Usage:       "translations file (locale -> key -> message)",
				Value:       flags.Translations,
				Destination: &flags.Translations,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Value:       flags.LogLevel,
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Value:       flags.LogFile,
				Destination: &flags.LogFile,
			},
			&cli.IntFlag{
				Name:        "max-attempts",
				Usage:       "re-prompts per invalid field when filling (0 = unlimited)",
				Value:       flags.MaxAttempts,
				Destination: &flags.MaxAttempts,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if flags.EnvFile != "" {
				cfg, err := config.LoadFile(flags.EnvFile)
				if err != nil {
					return ctx, fmt.Errorf("load env file: %w", err)
				}
				applyUnset(c, flags, cfg)
			}

			if err := flags.Config().Validate(); err != nil {
				fmt.Fprintln(c.Root().ErrWriter, "Invalid settings:")
				writeErrors(c.Root().ErrWriter, err)
				return ctx, cli.Exit("", 2)
			}

			logger, closer, err := logging.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			flags.Logger = logger
			logCloser = closer
			return ctx, nil
		},
	}

	app = NewCheckCmd(flags).Register(app)
	app = NewLsCmd(flags).Register(app)
	app = NewValidateCmd(flags).Register(app)
	app = NewFillCmd(flags, driver).Register(app)

	return app, func() { logCloser() }
}

// applyUnset copies settings from an env file onto flags the user did not
// pass explicitly.
func applyUnset(c *cli.Command, flags *Flags, cfg config.Config) {
	if !c.IsSet("definitions") {
		flags.Definitions = cfg.Definitions
	}
	if !c.IsSet("locale") {
		flags.Locale = cfg.Locale
	}
	if !c.IsSet("translations") {
		flags.Translations = cfg.Translations
	}
	if !c.IsSet("log-level") {
		flags.LogLevel = cfg.LogLevel
	}
	if !c.IsSet("log-file") {
		flags.LogFile = cfg.LogFile
	}
	if !c.IsSet("max-attempts") {
		flags.MaxAttempts = cfg.MaxAttempts
	}
}
