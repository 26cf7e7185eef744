package provider_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"hargakripto/internal/application"
	"hargakripto/internal/infrastructure/httpx"
	"hargakripto/internal/infrastructure/provider"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r), nil }

func httpClient(resBody string, code int) *httpx.Client {
	return httpClientFn(func(*http.Request) {}, resBody, code)
}

func httpClientFn(inspect func(*http.Request), resBody string, code int) *httpx.Client {
	return &httpx.Client{HTTP: &http.Client{
		Timeout: 2 * time.Second,
		Transport: roundTripFunc(func(r *http.Request) *http.Response {
			inspect(r)
			return &http.Response{
				StatusCode: code,
				Body:       io.NopCloser(strings.NewReader(resBody)),
				Header:     make(http.Header),
				Request:    r,
			}
		}),
	}}
}

const sampleOK = `{
  "success": true,
  "base": "EUR",
  "date": "2025-11-08",
  "rates": { "USD": 1.20, "IDR": 19500.00 }
}`

func TestRate_EURBase(t *testing.T) {
	p := &provider.ExchangeRatesAPIProvider{
		BaseURL: "https://api.exchangeratesapi.io",
		APIKey:  "test",
		Client: httpClientFn(func(r *http.Request) {
			require.Equal(t, "/v1/latest", r.URL.Path)
			require.Equal(t, "USD,IDR", r.URL.Query().Get("symbols"))
			require.Equal(t, "test", r.URL.Query().Get("access_key"))
		}, sampleOK, 200),
	}
	rate, err := p.Rate(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 16250, rate, 0.0001)
}

func TestRate_USDBase(t *testing.T) {
	body := `{"success": true, "base": "USD", "rates": {"IDR": 16300}}`
	p := &provider.ExchangeRatesAPIProvider{BaseURL: "http://example.com", APIKey: "k", Client: httpClient(body, 200)}
	rate, err := p.Rate(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 16300, rate, 0.0001)
}

func TestRate_MissingIDR(t *testing.T) {
	body := `{"success": true, "base": "EUR", "rates": {"USD": 1.2}}`
	p := &provider.ExchangeRatesAPIProvider{BaseURL: "http://example.com", APIKey: "k", Client: httpClient(body, 200)}
	_, err := p.Rate(context.Background())
	require.Error(t, err)
	require.Equal(t, application.KindUpstream, application.KindOf(err))
}

func TestRate_APIError(t *testing.T) {
	body := `{"success": false, "error": {"code": 104, "info": "quota exceeded"}}`
	p := &provider.ExchangeRatesAPIProvider{BaseURL: "https://api.exchangeratesapi.io", APIKey: "bad", Client: httpClient(body, 200)}
	_, err := p.Rate(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestRate_MissingConfig(t *testing.T) {
	p := &provider.ExchangeRatesAPIProvider{}
	_, err := p.Rate(context.Background())
	require.Error(t, err)
}
