package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"hargakripto/internal/application"
	"hargakripto/internal/domain"
	"hargakripto/internal/infrastructure/httpx"
)

const (
	DefaultCoinGeckoBase = "https://api.coingecko.com/api/v3"
	simplePricePath      = "/simple/price"
)

type CoinGecko struct {
	BaseURL string
	Client  *httpx.Client
}

var _ application.PriceProvider = (*CoinGecko)(nil)

// simplePriceResp is keyed by asset id, then by currency code. Pointers tell a
// null price apart from zero.
type simplePriceResp map[string]map[string]*float64

func (g *CoinGecko) SpotPrices(ctx context.Context, assets []domain.Asset, vsCurrency string) (domain.Prices, error) {
	const op = "coingecko: simple price"
	if len(assets) == 0 {
		return nil, application.E(application.KindInternal, op, errors.New("no assets requested"))
	}

	base := g.BaseURL
	if base == "" {
		base = DefaultCoinGeckoBase
	}
	u, err := url.Parse(strings.TrimRight(base, "/") + simplePricePath)
	if err != nil {
		return nil, application.E(application.KindInternal, op, fmt.Errorf("invalid base url: %w", err))
	}
	q := u.Query()
	q.Set("ids", strings.Join(domain.AssetIDs(assets), ","))
	q.Set("vs_currencies", vsCurrency)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, application.E(application.KindInternal, op, fmt.Errorf("create request: %w", err))
	}

	client := g.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body simplePriceResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return nil, classify(op, err)
	}

	prices := make(domain.Prices, len(assets))
	for _, a := range assets {
		quotes, ok := body[a.ID]
		if !ok || quotes == nil {
			return nil, application.E(application.KindUpstream, op, fmt.Errorf("incomplete response: missing %s", a.ID))
		}
		v, ok := quotes[vsCurrency]
		if !ok || v == nil {
			return nil, application.E(application.KindUpstream, op, fmt.Errorf("incomplete response: missing %s.%s", a.ID, vsCurrency))
		}
		prices[a.Key] = *v
	}
	return prices, nil
}

// classify sorts an httpx failure into upstream data problems and transport
// problems.
func classify(op string, err error) error {
	if errors.Is(err, httpx.ErrDecode) {
		return application.E(application.KindUpstream, op, err)
	}
	return application.E(application.KindTransport, op, err)
}
