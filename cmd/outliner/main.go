package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/krishnasree5/outliner/internal/batch"
	"github.com/krishnasree5/outliner/internal/config"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	input := flag.String("input", cfg.InputDir, "directory to scan for documents")
	output := flag.String("output", cfg.OutputDir, "directory to write outline artifacts into")
	workers := flag.Int("workers", cfg.WorkerCount, "number of parallel workers")
	flag.Parse()

	cfg.InputDir = *input
	cfg.OutputDir = *output
	if *workers > 0 {
		cfg.WorkerCount = *workers
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := batch.Run(ctx, cfg, log); err != nil {
		log.Error("batch failed", "error", err)
		os.Exit(1)
	}
}
