package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/spikefactor/internal/cli"
	"github.com/okian/spikefactor/pkg/logger"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx)
	if syncErr := logger.Sync(); syncErr != nil {
		os.Stderr.WriteString("failed to sync logger: " + syncErr.Error() + "\n")
	}
	if err != nil {
		os.Stderr.WriteString("spikefactor: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
