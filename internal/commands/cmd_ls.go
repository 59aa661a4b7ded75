package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/page"
)

type LsCmd struct {
	flags *Flags
}

// NewLsCmd creates the page listing command.
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List defined pages and their fields",
		UsageText: "adminui ls",
		Action:    cmd.run,
	})
	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer
	if _, err := cmd.flags.LoadPages(); err != nil {
		fmt.Fprintln(c.Root().ErrWriter, "Definitions are invalid:")
		writeErrors(c.Root().ErrWriter, err)
		return cli.Exit("", 1)
	}

	for _, p := range cmd.flags.Registry.Pages() {
		fmt.Fprintf(w, "%s  %q  %s\n", p.ID(), p.Title(), menuInfo(p))
		for _, f := range p.Fields() {
			fmt.Fprintf(w, "  %-20s %s\n", f.ID(), describe(f))
		}
	}
	return nil
}

func menuInfo(p *page.Page) string {
	parts := []string{"slug=" + p.Slug(), "cap=" + p.CapabilityName()}
	if p.IsSubmenu() {
		parts = append(parts, "parent="+p.ParentSlug())
	}
	if pos, ok := p.MenuPosition(); ok {
		parts = append(parts, fmt.Sprintf("position=%d", pos))
	}
	return strings.Join(parts, " ")
}

func describe(f *field.Field) string {
	cfg := f.Config()
	out := string(cfg.Kind)
	if cfg.Kind == field.KindText && cfg.InputType != field.InputText {
		out += "/" + string(cfg.InputType)
	}
	if f.IsGroup() {
		out += " (multiple)"
	}
	if cfg.Required {
		out += " required"
	}
	if len(cfg.Choices) > 0 {
		out += " [" + strings.Join(cfg.Choices.Keys(), ", ") + "]"
	}
	return out
}
