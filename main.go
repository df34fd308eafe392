package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/sigma/cli"
	"github.com/ardnew/sigma/log"
)

func main() {
	ctx := context.Background()

	if err := cli.Run(ctx, os.Exit, os.Args[1:]...); err != nil {
		log.ErrorContext(ctx, "run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
