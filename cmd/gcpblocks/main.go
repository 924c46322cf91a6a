// Command gcpblocks invokes Google Cloud REST operations as declarative blocks.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/custodia-labs/gcpblocks/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags.
var version = "dev"

func main() {
	// work around lipgloss/termenv integration bug.
	// See https://github.com/charmbracelet/lipgloss/issues/73#issuecomment-1144921037
	lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)
	cli.Main(ctx)
}
