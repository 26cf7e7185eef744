package provider

import (
	"context"

	"hargakripto/internal/application"
	"hargakripto/internal/domain"
)

var (
	_ application.PriceProvider = (*Fake)(nil)
	_ application.RateProvider  = (*Fake)(nil)
)

// Fake serves fixed readings for local runs without network access.
type Fake struct {
	prices domain.Prices
	rate   float64
}

func NewFake(prices domain.Prices, rate float64) *Fake { return &Fake{prices: prices, rate: rate} }

// DefaultFakePrices is a plausible IDR reading for every tracked asset.
func DefaultFakePrices() domain.Prices {
	return domain.Prices{"bitcoin": 650000000, "ethereum": 35000000, "solana": 2000000, "usdt": 15500}
}

func (f *Fake) SpotPrices(_ context.Context, assets []domain.Asset, _ string) (domain.Prices, error) {
	out := make(domain.Prices, len(assets))
	for _, a := range assets {
		out[a.Key] = f.prices[a.Key]
	}
	return out, nil
}

func (f *Fake) Rate(context.Context) (float64, error) { return f.rate, nil }
