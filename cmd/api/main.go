package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hargakripto/internal/bootstrap"
	"hargakripto/internal/config"
	infraconfig "hargakripto/internal/infrastructure/config"
	httpserver "hargakripto/internal/infrastructure/http"
	"hargakripto/internal/infrastructure/logx"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	backend, cleanup, err := bootstrap.BuildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("bootstrap storage", zap.Error(err))
	}
	defer cleanup()

	snapshots, history := bootstrap.BuildReaders(cfg, backend.Storage)
	srv := httpserver.NewServer(snapshots, history,
		httpserver.WithPing(backend.Ping),
		httpserver.WithHistoryLimit(infraconfig.DefaultHistoryLimit),
	)

	server := &http.Server{
		Addr:    addr,
		Handler: httpserver.NewRouter(srv),
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), infraconfig.DefaultShutdownTimeout)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
