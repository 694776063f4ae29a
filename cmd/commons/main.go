package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/commons/build"
	"github.com/amp-labs/commons/cli"
	"github.com/amp-labs/commons/logger"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.ConfigureLogging(ctx, "commons")

	if err := cli.Run(ctx, build.Current(version).String(), os.Args); err != nil {
		stop()
		logger.Fatal("command failed", "error", err)
	}
}
