package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/logrusorgru/aurora"
	"github.com/modernice/todo/cli/internal/clifactory"
)

// Main is the entrypoint for the CLI. Call Main from an actual main function.
func Main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := New(clifactory.Context(ctx))

	if err := app.Run(); err != nil {
		log.Fatal(aurora.Red(err))
	}
}
