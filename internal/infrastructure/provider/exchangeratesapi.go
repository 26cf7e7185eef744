package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"hargakripto/internal/application"
	"hargakripto/internal/infrastructure/httpx"
)

const (
	exchangeRatesLatestPath = "/v1/latest"
	rateFrom                = "USD"
	rateTo                  = "IDR"
)

// ExchangeRatesAPIProvider returns the USD to IDR rate from an
// exchangeratesapi.io compatible endpoint.
type ExchangeRatesAPIProvider struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

var _ application.RateProvider = (*ExchangeRatesAPIProvider)(nil)

type xrLatestResp struct {
	Success   bool               `json:"success"`
	Timestamp int64              `json:"timestamp"`
	Base      string             `json:"base"`
	Date      string             `json:"date"`
	Rates     map[string]float64 `json:"rates"`
	Error     *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

func (p *ExchangeRatesAPIProvider) Rate(ctx context.Context) (float64, error) {
	const op = "exchangeratesapi: latest"
	if p.BaseURL == "" || p.APIKey == "" {
		return 0, application.E(application.KindInternal, op, errors.New("missing configuration"))
	}

	u, err := url.Parse(strings.TrimRight(p.BaseURL, "/"))
	if err != nil {
		return 0, application.E(application.KindInternal, op, fmt.Errorf("invalid base url: %w", err))
	}
	u.Path = exchangeRatesLatestPath
	q := u.Query()
	q.Set("access_key", p.APIKey)
	q.Set("symbols", rateFrom+","+rateTo)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, application.E(application.KindInternal, op, fmt.Errorf("create request: %w", err))
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body xrLatestResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return 0, classify(op, err)
	}
	if !body.Success {
		if body.Error != nil {
			return 0, application.E(application.KindUpstream, op, fmt.Errorf("%d %s", body.Error.Code, body.Error.Info))
		}
		return 0, application.E(application.KindUpstream, op, errors.New("unsuccessful response"))
	}

	baseTo := func(c string) (float64, error) {
		if c == body.Base {
			return 1.0, nil
		}
		v, ok := body.Rates[c]
		if !ok {
			return 0, fmt.Errorf("missing rate for %s", c)
		}
		return v, nil
	}
	toFrom, err := baseTo(rateFrom)
	if err != nil {
		return 0, application.E(application.KindUpstream, op, err)
	}
	toTo, err := baseTo(rateTo)
	if err != nil {
		return 0, application.E(application.KindUpstream, op, err)
	}
	if toFrom == 0 {
		return 0, application.E(application.KindUpstream, op, errors.New("zero rate for USD"))
	}
	return toTo / toFrom, nil
}
