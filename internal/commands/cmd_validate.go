package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-adminui/pkg/feedback"
	"github.com/goliatone/go-adminui/pkg/page"
)

type ValidateCmd struct {
	flags  *Flags
	pageID string
	values string
	format string
}

// NewValidateCmd creates the submission validate command.
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application.
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "validate",
		Usage:       "Run submitted values through a page's fields",
		UsageText:   "adminui validate --page <id> --values <file|->",
		Description: "Sanitizes and validates a JSON or YAML object of submitted values against a page definition.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "page id",
				Required:    true,
				Destination: &cmd.pageID,
			},
			&cli.StringFlag{
				Name:        "values",
				Usage:       "values file, or - for stdin",
				Value:       "-",
				Destination: &cmd.values,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

type submissionJSON struct {
	Page     string           `json:"page"`
	Valid    bool             `json:"valid"`
	Values   map[string]any   `json:"values"`
	Feedback feedback.Mapping `json:"feedback"`
	Unknown  []string         `json:"unknown,omitempty"`
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer
	log := cmd.flags.Log("validate")

	if _, err := cmd.flags.LoadPages(); err != nil {
		fmt.Fprintln(c.Root().ErrWriter, "Definitions are invalid:")
		writeErrors(c.Root().ErrWriter, err)
		return cli.Exit("", 1)
	}
	p, err := cmd.flags.Registry.Page(cmd.pageID)
	if err != nil {
		return err
	}

	values, err := readValues(cmd.values, os.Stdin)
	if err != nil {
		return err
	}

	opts, err := cmd.flags.FeedbackOptions()
	if err != nil {
		return err
	}
	opts.Labels = feedback.LabelsFor(p)

	sub := p.Submit(values)
	unknown := p.Unknown(values)
	mapping := feedback.Map(sub, opts)

	log.Info().
		Str("page", p.ID()).
		Bool("valid", sub.Valid()).
		Strs("invalid", sub.Invalid()).
		Strs("unknown", unknown).
		Msg("submission processed")

	if cmd.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(submissionJSON{
			Page:     p.ID(),
			Valid:    sub.Valid(),
			Values:   sub.Values,
			Feedback: mapping,
			Unknown:  unknown,
		}); err != nil {
			return err
		}
	} else {
		writeSubmission(w, p, sub, mapping, unknown)
	}

	if !sub.Valid() {
		return cli.Exit("", 1)
	}
	return nil
}

func writeSubmission(w io.Writer, p *page.Page, sub page.Submission, mapping feedback.Mapping, unknown []string) {
	for _, id := range sub.Order {
		if msgs := mapping.Fields[id]; len(msgs) > 0 {
			fmt.Fprintf(w, "✗ %s: %s\n", id, msgs[0])
			continue
		}
		fmt.Fprintf(w, "✓ %s = %v\n", id, sub.Values[id])
	}
	for _, key := range unknown {
		fmt.Fprintf(w, "- %s ignored (no such field on %s)\n", key, p.ID())
	}
	for _, msg := range mapping.Form {
		fmt.Fprintln(w, msg)
	}
}
