package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-adminui/pkg/feedback"
	"github.com/goliatone/go-adminui/pkg/prompt"
)

type FillCmd struct {
	flags  *Flags
	pageID string
	driver prompt.PromptDriver
}

// NewFillCmd creates the interactive fill command. A nil driver uses the
// terminal.
func NewFillCmd(flags *Flags, driver prompt.PromptDriver) *FillCmd {
	return &FillCmd{flags: flags, driver: driver}
}

// Register adds the fill command to the application.
func (cmd *FillCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "fill",
		Usage:       "Fill a page interactively",
		UsageText:   "adminui fill --page <id>",
		Description: "Prompts for every field of a page, re-asking until each answer is valid, then prints the values as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "page id",
				Required:    true,
				Destination: &cmd.pageID,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *FillCmd) run(ctx context.Context, c *cli.Command) error {
	if _, err := cmd.flags.LoadPages(); err != nil {
		fmt.Fprintln(c.Root().ErrWriter, "Definitions are invalid:")
		writeErrors(c.Root().ErrWriter, err)
		return cli.Exit("", 1)
	}
	p, err := cmd.flags.Registry.Page(cmd.pageID)
	if err != nil {
		return err
	}

	opts, err := cmd.flags.FeedbackOptions()
	if err != nil {
		return err
	}

	driver := cmd.driver
	if driver == nil {
		driver = prompt.NewSurveyDriver(c.Root().ErrWriter)
	}
	filler := prompt.New(
		prompt.WithPromptDriver(driver),
		prompt.WithMaxAttempts(cmd.flags.MaxAttempts),
		prompt.WithFeedback(opts),
	)

	log := cmd.flags.Log("fill")
	sub, err := filler.Fill(ctx, p)
	if errors.Is(err, prompt.ErrAborted) {
		log.Info().Str("page", p.ID()).Msg("fill aborted")
		return cli.Exit("aborted", 130)
	}
	if err != nil {
		return err
	}

	log.Info().Str("page", p.ID()).Bool("valid", sub.Valid()).Msg("page filled")

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(submissionJSON{
		Page:     p.ID(),
		Valid:    sub.Valid(),
		Values:   sub.Values,
		Feedback: feedback.Map(sub, opts),
	})
}
