package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/app"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/logger"
)

// usage: stockroom [finance|healthcare|warehouse|grading|inventory|all] [arg]
func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	var exercise string
	var args []string
	if len(os.Args) > 1 {
		exercise, args = os.Args[1], os.Args[2:]
	}

	a, err := app.New(ctx, os.Stdout)
	if err != nil {
		logger.Error(ctx,
			"failed to create an application",
			logger.ErrorF(err),
		)
		os.Exit(1)
	}

	if err := a.Run(ctx, exercise, args); err != nil {
		logger.Error(ctx, "stockroom finished with errors", logger.ErrorF(err))
		os.Exit(1)
	}
}
