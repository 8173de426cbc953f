package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/worklog/cmd"
	"github.com/thenoetrevino/worklog/internal/cli"
)

func main() {
	// Root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	err := cmd.Execute(ctx)
	cancel()

	// Command errors were already reported; cobra's own errors were not
	var cmdErr *cli.CommandError
	if err != nil && !errors.As(err, &cmdErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
