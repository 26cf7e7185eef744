package application

import (
	"context"

	"hargakripto/internal/domain"
)

type PriceProvider interface {
	SpotPrices(ctx context.Context, assets []domain.Asset, vsCurrency string) (domain.Prices, error)
}

// RateProvider returns the USD to quote currency exchange rate.
type RateProvider interface {
	Rate(ctx context.Context) (float64, error)
}

// Storage holds named blobs: the snapshot, the history log and the document.
type Storage interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
	Append(ctx context.Context, name string, data []byte) error
}

type SectionRenderer interface {
	Render(snap domain.Snapshot, recent []domain.HistoryRow) (string, error)
}
