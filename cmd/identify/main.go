// Command identify runs AI identification over idle items of one owner,
// for backfills after an outage or a model change. It processes at most
// -limit items per run in the same groups the batch endpoint uses.
//
// Exit codes: 0 = success (per-item failures are logged), 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/app"
	"github.com/heartmarshall/resale-backend/internal/config"
)

func main() {
	ownerRaw := flag.String("owner", "", "owner user id whose idle items are identified")
	limit := flag.Int("limit", 50, "maximum number of items to process")
	flag.Parse()

	ownerID, err := uuid.Parse(*ownerRaw)
	if err != nil {
		log.Fatalf("invalid -owner: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs, err := app.NewServices(cfg, pool, logger)
	if err != nil {
		logger.Error("build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	summary, err := svcs.Identify.IdentifyIdle(ctx, ownerID, *limit)
	if err != nil {
		logger.Error("identify idle items", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, r := range summary.Results {
		if r.Error != "" {
			logger.Warn("item failed",
				slog.String("item_id", r.ItemID.String()),
				slog.String("error", r.Error),
			)
		}
	}

	logger.Info("identification completed",
		slog.String("owner_id", ownerID.String()),
		slog.Int("processed", summary.TotalProcessed),
		slog.Int("errors", summary.TotalErrors),
	)
}
