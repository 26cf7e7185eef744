package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hargakripto/internal/application"
)

var _ application.Worker = (*Scheduler)(nil)

// Scheduler repeats tracker passes on a fixed interval. Passes never overlap:
// a slow pass delays the next tick.
type Scheduler struct {
	Tracker interface {
		Run(ctx context.Context) (application.Outcome, error)
	}
	Every time.Duration
	Log   *zap.Logger
}

func (s *Scheduler) Start(ctx context.Context) {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	if s.Every <= 0 {
		s.Every = time.Minute
	}

	log.Info("scheduler_started", zap.Duration("every", s.Every))
	s.tick(ctx, log)

	t := time.NewTicker(s.Every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("scheduler_stopped")
			return
		case <-t.C:
			s.tick(ctx, log)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, log *zap.Logger) {
	out, err := s.Tracker.Run(ctx)
	if err != nil {
		log.Warn("pass_failed", zap.String("run_id", out.RunID), zap.Stringer("kind", application.KindOf(err)), zap.Error(err))
		return
	}
	log.Debug("pass_done", zap.String("run_id", out.RunID), zap.Bool("changed", out.Changed), zap.Bool("skipped", out.Skipped))
}
