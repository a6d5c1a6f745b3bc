package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamNilotpal/fsum/pkg/cli"
)

func main() {
	// SIGINT/SIGTERM cancel the context; the engine observes it at the
	// next chunk boundary and unwinds without finalizing.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, os.Args)
	stop()
	os.Exit(code)
}
