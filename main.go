package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"multiselect/internal/cli"
)

var version = "dev"

func main() {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	cli.Execute(ctx, version)
}
