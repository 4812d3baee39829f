package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/cache"
	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/repository/document"
	"github.com/vncsmyrnk/bookclub-poll/internal/adapters/store"
	"github.com/vncsmyrnk/bookclub-poll/internal/config"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/services"
	"github.com/vncsmyrnk/bookclub-poll/internal/lib/logger"
	"github.com/vncsmyrnk/bookclub-poll/internal/lib/logger/sl"
)

const (
	healthMessage     = "Book Club Poll API is running"
	mockHealthMessage = "Book Club Poll API is running (Mock Mode)"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred cleanup runs before main exits.
func run() int {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	pollSvc := services.NewPollService(pollRepo)
	responseSvc := services.NewResponseService(pollRepo, responseRepo, resultsCache, log)
	resultsSvc := services.NewResultsService(pollRepo, responseRepo, resultsCache, log)

	message := healthMessage
	if cfg.Store.Driver == config.DriverMemory {
		message = mockHealthMessage
	}

	handler := http.NewHandler(http.Handlers{
		Health:    http.NewHealthHandler(message),
		Polls:     http.NewPollHandler(pollSvc, log),
		Responses: http.NewResponseHandler(responseSvc, pollSvc, log),
		Results:   http.NewResultsHandler(resultsSvc, log),
	}, log, cfg.CORS.AllowedOrigins)

	server := &stdhttp.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address), slog.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		log.Error("server stopped", sl.Err(err))
		return 1
	case <-ctx.Done():
	}
	log.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", sl.Err(err))
		return 1
	}

	return 0
}
