// Package main is the entry point for the carewizard CLI.
//
// carewizard runs a four-step wellness checkup in the terminal, saves an
// advisory health summary for every submitted checkup and offers a chat with
// a wellness advisor.
//
// Commands: checkup, advisor, reports, recommendations, version.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mrsinham/carewizard/cmd/carewizard/commands"
)

// Version information set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
