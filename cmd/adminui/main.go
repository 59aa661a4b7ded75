package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/goliatone/go-adminui/internal/commands"
	"github.com/goliatone/go-adminui/internal/config"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	v, c := version, commit
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}
	if len(c) > 7 {
		c = c[:7]
	}
	return fmt.Sprintf("%s (%s)", v, c)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "adminui: %v\n", err)
		os.Exit(2)
	}

	app, closeLogs := commands.NewApp(commands.NewFlags(cfg), build(), nil)
	defer closeLogs()

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "adminui: %v\n", err)
		closeLogs()
		os.Exit(1)
	}
}
