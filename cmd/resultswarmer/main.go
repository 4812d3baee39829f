package main

import (
	"context"
	"os"
	"time"

	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/cache"
	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/repository/document"
	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/store"
	"github.com/vncsmyrnk/bookclub-poll/internal/config"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/services"
	"github.com/vncsmyrnk/bookclub-poll/internal/lib/logger"
	"github.com/vncsmyrnk/bookclub-poll/internal/lib/logger/sl"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.Redis.Addr == "" {
		log.Warn("REDIS_ADDR is empty, results will be computed but not cached")
	}

	docStore, err := store.Open(ctx, cfg.Store, log)
	if err != nil {
		log.Error("failed to open document store", sl.Err(err))
		return 1
	}
	defer docStore.Close()

	resultsCache, closeCache, err := cache.Open(ctx, cfg.Redis)
	if err != nil {
		log.Error("failed to open results cache", sl.Err(err))
		return 1
	}
	defer closeCache()

	pollRepo := document.NewPollRepository(docStore)
	responseRepo := document.NewResponseRepository(docStore)

	resultsSvc := services.NewResultsService(pollRepo, responseRepo, resultsCache, log)
	summarySvc := services.NewSummaryService(pollRepo, resultsSvc)

	log.Info("starting results warm-up job")

	if err := summarySvc.SummarizeAll(ctx); err != nil {
		log.Error("failed to summarize results", sl.Err(err))
		return 1
	}

	log.Info("results warm-up completed")
	return 0
}
