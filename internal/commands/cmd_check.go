package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"
)

type CheckCmd struct {
	flags  *Flags
	format string
}

// NewCheckCmd creates the definitions check command.
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application.
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "check",
		Usage:       "Validate page definition files",
		UsageText:   "adminui check [options]",
		Description: "Loads every definition file and reports configuration mistakes with their document paths.",
		Flags: []cli.Flag{
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

type checkJSON struct {
	Valid    bool          `json:"valid"`
	Pages    int           `json:"pages"`
	Fields   int           `json:"fields"`
	Problems []problemJSON `json:"problems,omitempty"`
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer
	set, err := cmd.flags.LoadPages()

	out := checkJSON{Valid: err == nil}
	if err != nil {
		log := cmd.flags.Log("check")
		log.Error().Err(err).Msg("definitions invalid")
		out.Problems = problems(err)
	} else {
		out.Pages = len(set.Pages())
		for _, p := range set.Pages() {
			out.Fields += len(p.Fields())
		}
	}

	if cmd.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(out); encErr != nil {
			return encErr
		}
	} else if err != nil {
		fmt.Fprintln(w, "Definitions are invalid:")
		writeErrors(w, err)
	} else {
		fmt.Fprintf(w, "Definitions are valid: %d page(s), %d field(s)\n", out.Pages, out.Fields)
	}

	if err != nil {
		return cli.Exit("", 1)
	}
	return nil
}
