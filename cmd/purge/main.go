// Command purge physically removes items soft-deleted longer ago than the
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/app"
	"github.com/heartmarshall/resale-backend/internal/config"
	"github.com/heartmarshall/resale-backend/internal/domain"
)

func main() {
	days := flag.Int("older-than-days", 30, "purge items deleted more than this many days ago")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
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

	age := time.Duration(*days) * 24 * time.Hour
	purged, err := svcs.Items.PurgeDeleted(ctx, domain.SystemActor(), age)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Duration("older_than", age),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int64("purged", purged),
		slog.Duration("older_than", age),
	)
}
