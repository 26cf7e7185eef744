package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hargakripto/internal/domain"
)

const runLockKey = "tracker:run"

// ChartPoints is how many history rows feed the document charts.
const ChartPoints = 10

type Outcome struct {
	RunID    string
	Changed  bool
	Skipped  bool
	Snapshot domain.Snapshot
}

type Tracker struct {
	prices    PriceProvider
	rates     RateProvider
	snapshots *SnapshotStore
	history   *HistoryLog
	document  *Document
	assets    []domain.Asset
	guard     RunGuard
	clock     Clock
	log       *zap.Logger
}

type Option func(*Tracker)

func WithClock(c Clock) Option               { return func(t *Tracker) { t.clock = c } }
func WithRateProvider(r RateProvider) Option { return func(t *Tracker) { t.rates = r } }
func WithRunGuard(g RunGuard) Option         { return func(t *Tracker) { t.guard = g } }
func WithLogger(l *zap.Logger) Option        { return func(t *Tracker) { t.log = l } }
func WithAssets(a []domain.Asset) Option     { return func(t *Tracker) { t.assets = a } }

func NewTracker(prices PriceProvider, snapshots *SnapshotStore, history *HistoryLog, document *Document, opts ...Option) *Tracker {
	t := &Tracker{
		prices:    prices,
		snapshots: snapshots,
		history:   history,
		document:  document,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.clock == nil {
		t.clock = realClock{}
	}
	if t.guard == nil {
		t.guard = NoopGuard{}
	}
	if t.log == nil {
		t.log = zap.NewNop()
	}
	if t.assets == nil {
		t.assets = domain.Assets
	}
	return t
}

// Run performs one fetch, compare and write pass. Any returned error is fatal
// for the run; recoverable conditions are logged and swallowed.
func (t *Tracker) Run(ctx context.Context) (Outcome, error) {
	out := Outcome{RunID: uuid.NewString()}
	log := t.log.With(zap.String("run_id", out.RunID))

	ok, err := t.guard.TryReserve(ctx, runLockKey)
	if err != nil {
		return out, E(KindStorage, "run lock", err)
	}
	if !ok {
		log.Warn("run_skipped", zap.String("reason", "another run holds the lock"))
		out.Skipped = true
		return out, nil
	}
	defer func() {
		if err := t.guard.Release(context.WithoutCancel(ctx), runLockKey); err != nil {
			log.Warn("run_lock_release_failed", zap.Error(err))
		}
	}()

	prices, err := t.prices.SpotPrices(ctx, t.assets, domain.QuoteCurrency)
	if err != nil {
		log.Error("fetch_failed", zap.Stringer("kind", KindOf(err)), zap.Error(err))
		return out, err
	}
	var rate *float64
	if t.rates != nil {
		r, err := t.rates.Rate(ctx)
		if err != nil {
			log.Error("rate_fetch_failed", zap.Stringer("kind", KindOf(err)), zap.Error(err))
			return out, err
		}
		rate = &r
	}
	snap := domain.NewSnapshot(t.clock.Now(), prices, rate)
	out.Snapshot = snap

	prev, err := t.snapshots.Load(ctx)
	if err != nil {
		if !KindOf(err).Recoverable() {
			return out, err
		}
		log.Warn("snapshot_baseline_empty", zap.Stringer("kind", KindOf(err)), zap.Error(err))
	}
	if prev.Equal(snap) {
		log.Info("no_price_change", zap.String("last_update", prev.Time))
		return out, nil
	}

	if err := t.snapshots.Save(ctx, snap); err != nil {
		log.Error("snapshot_write_failed", zap.Error(err))
		return out, err
	}
	out.Changed = true
	log.Info("snapshot_written", zap.String("time", snap.Time))

	appended, err := t.history.Append(ctx, snap.Row())
	if err != nil {
		log.Error("history_append_failed", zap.Error(err))
		return out, err
	}
	if appended {
		log.Info("history_updated")
	} else {
		log.Info("history_duplicate_skipped", zap.String("time", snap.Time))
	}

	recent, err := t.history.Recent(ctx, ChartPoints)
	if err != nil {
		log.Error("history_read_failed", zap.Error(err))
		return out, err
	}
	if err := t.document.Update(ctx, snap, recent); err != nil {
		if !KindOf(err).Recoverable() {
			log.Error("document_update_failed", zap.Error(err))
			return out, err
		}
		log.Warn("document_created", zap.Error(err))
	}
	log.Info("document_updated")
	return out, nil
}
