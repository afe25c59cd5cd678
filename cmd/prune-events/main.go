// Command prune-events removes event log records older than the configured
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/bullion-registry/internal/app"
	"github.com/heartmarshall/bullion-registry/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Driver == config.StorageMemory {
		log.Fatal("prune-events needs a persistent store; storage.driver is memory")
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	st, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	threshold := time.Now().AddDate(0, 0, -cfg.Events.RetentionDays)

	deleted, err := st.Events.DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("prune events failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("prune events completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
