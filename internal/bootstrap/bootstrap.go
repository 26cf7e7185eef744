package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hargakripto/internal/application"
	"hargakripto/internal/config"
	"hargakripto/internal/domain"
	"hargakripto/internal/infrastructure/fsstore"
	"hargakripto/internal/infrastructure/httpx"
	"hargakripto/internal/infrastructure/pg"
	"hargakripto/internal/infrastructure/provider"
	redisstore "hargakripto/internal/infrastructure/redis"
	"hargakripto/internal/render"
)

var ErrMissingDBURL = errors.New("DATABASE_URL is required for STORAGE=pg")

// Backend is the configured Storage plus a readiness probe.
type Backend struct {
	Storage application.Storage
	Ping    func(ctx context.Context) error
}

func newRedisClient(cfg config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// BuildStorage builds the blob storage selected by STORAGE (fs, redis or pg).
func BuildStorage(ctx context.Context, cfg config.Config, log *zap.Logger) (Backend, func(), error) {
	switch cfg.Storage {
	case "", "fs":
		return Backend{Storage: fsstore.New(cfg.DataRoot)}, func() {}, nil

	case "redis":
		client := newRedisClient(cfg)
		cleanup := func() { _ = client.Close() }
		ping := func(ctx context.Context) error { return client.Ping(ctx).Err() }
		return Backend{Storage: redisstore.NewBlobStore(client, cfg.RedisPrefix), Ping: ping}, cleanup, nil

	case "pg":
		if cfg.DatabaseURL == "" {
			return Backend{}, func() {}, ErrMissingDBURL
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return Backend{}, func() {}, err
		}
		if err := pg.RunMigrations(ctx, db); err != nil {
			db.Close()
			return Backend{}, func() {}, err
		}
		cleanup := func() {
			log.Info("closing pg")
			db.Close()
		}
		return Backend{Storage: pg.NewBlobStore(db), Ping: db.Ping}, cleanup, nil

	default:
		return Backend{}, func() {}, fmt.Errorf("unsupported STORAGE=%q", cfg.Storage)
	}
}

func httpClient(cfg config.Config) *httpx.Client {
	return &httpx.Client{HTTP: &http.Client{Timeout: cfg.RequestTimeout}}
}

// BuildPriceProvider returns the price source selected by PRICE_PROVIDER.
func BuildPriceProvider(cfg config.Config) (application.PriceProvider, error) {
	switch cfg.PriceProvider {
	case "", "coingecko":
		return &provider.CoinGecko{BaseURL: cfg.PriceAPIBase, Client: httpClient(cfg)}, nil
	case "fake":
		return provider.NewFake(provider.DefaultFakePrices(), 0), nil
	default:
		return nil, fmt.Errorf("unsupported PRICE_PROVIDER=%q", cfg.PriceProvider)
	}
}

// BuildRateProvider returns nil when the exchange rate is not tracked.
func BuildRateProvider(cfg config.Config) (application.RateProvider, error) {
	switch cfg.KursProvider {
	case "", "none":
		return nil, nil
	case "exchangeratesapi":
		return &provider.ExchangeRatesAPIProvider{
			BaseURL: cfg.ExchangeAPIBase,
			APIKey:  cfg.ExchangeAPIKey,
			Client:  httpClient(cfg),
		}, nil
	case "fake":
		return provider.NewFake(nil, 16250), nil
	default:
		return nil, fmt.Errorf("unsupported KURS_PROVIDER=%q", cfg.KursProvider)
	}
}

// BuildRunGuard builds the overlap lock selected by RUN_LOCK (none or redis).
func BuildRunGuard(cfg config.Config) (application.RunGuard, func(), error) {
	switch cfg.RunLock {
	case "", "none":
		return application.NoopGuard{}, func() {}, nil
	case "redis":
		client := newRedisClient(cfg)
		return redisstore.NewRunLock(client, cfg.RedisPrefix, cfg.RunLockTTL), func() { _ = client.Close() }, nil
	default:
		return nil, func() {}, fmt.Errorf("unsupported RUN_LOCK=%q", cfg.RunLock)
	}
}

func BuildRenderer(cfg config.Config) (render.Renderer, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return render.Renderer{}, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	return render.Renderer{
		Location:     loc,
		Assets:       domain.Assets,
		ChartAssets:  domain.ChartAssets,
		ChartBaseURL: cfg.ChartBaseURL,
	}, nil
}

// BuildReaders returns the snapshot store and history log over storage.
func BuildReaders(cfg config.Config, storage application.Storage) (*application.SnapshotStore, *application.HistoryLog) {
	return application.NewSnapshotStore(storage, cfg.SnapshotPath),
		application.NewHistoryLog(storage, cfg.HistoryPath, domain.Assets, cfg.TracksRate())
}

// BuildTracker wires the whole pipeline. The returned cleanup closes every
// backend that was opened.
func BuildTracker(ctx context.Context, cfg config.Config, log *zap.Logger) (*application.Tracker, func(), error) {
	cleanups := []func(){}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	backend, closeStorage, err := BuildStorage(ctx, cfg, log)
	if err != nil {
		return nil, cleanup, fmt.Errorf("build storage: %w", err)
	}
	cleanups = append(cleanups, closeStorage)

	guard, closeGuard, err := BuildRunGuard(cfg)
	if err != nil {
		return nil, cleanup, fmt.Errorf("build run lock: %w", err)
	}
	cleanups = append(cleanups, closeGuard)

	prices, err := BuildPriceProvider(cfg)
	if err != nil {
		return nil, cleanup, err
	}
	rates, err := BuildRateProvider(cfg)
	if err != nil {
		return nil, cleanup, err
	}
	renderer, err := BuildRenderer(cfg)
	if err != nil {
		return nil, cleanup, err
	}

	snapshots, history := BuildReaders(cfg, backend.Storage)
	document := application.NewDocument(backend.Storage, cfg.DocumentPath, renderer)

	opts := []application.Option{
		application.WithRunGuard(guard),
		application.WithLogger(log),
	}
	if rates != nil {
		opts = append(opts, application.WithRateProvider(rates))
	}
	return application.NewTracker(prices, snapshots, history, document, opts...), cleanup, nil
}
