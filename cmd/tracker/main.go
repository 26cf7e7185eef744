package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hargakripto/internal/application"
	"hargakripto/internal/bootstrap"
	"hargakripto/internal/config"
	"hargakripto/internal/infrastructure/logx"
	"hargakripto/internal/infrastructure/worker"
)

func init() { _ = godotenv.Load() }

func main() {
	os.Exit(run())
}

func run() int {
	log := logx.L()
	defer func() { _ = log.Sync() }()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracker, cleanup, err := bootstrap.BuildTracker(ctx, cfg, log)
	defer cleanup()
	if err != nil {
		log.Error("init tracker", zap.Error(err))
		return 1
	}

	if cfg.Interval > 0 {
		(&worker.Scheduler{Tracker: tracker, Every: cfg.Interval, Log: log}).Start(ctx)
		return 0
	}

	out, err := tracker.Run(ctx)
	if err != nil {
		log.Error("run failed", zap.String("run_id", out.RunID), zap.Stringer("kind", application.KindOf(err)), zap.Error(err))
	}
	return application.ExitCode(err)
}
