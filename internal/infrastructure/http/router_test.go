package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"hargakripto/internal/application"
	"hargakripto/internal/domain"
	"hargakripto/internal/infrastructure/memstore"
)

const (
	snapshotName = "data/harga.json"
	historyName  = "data/riwayat.csv"
)

func setup(store *memstore.Store, opts ...Option) http.Handler {
	srv := NewServer(
		application.NewSnapshotStore(store, snapshotName),
		application.NewHistoryLog(store, historyName, domain.Assets, false),
		opts...,
	)
	return NewRouter(srv)
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(setup(memstore.New()), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestReadyz_PingFails(t *testing.T) {
	h := setup(memstore.New(), WithPing(func(context.Context) error { return errors.New("down") }))
	rec := get(h, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetLatest_EmptyStore(t *testing.T) {
	rec := get(setup(memstore.New()), "/prices/latest")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetLatest(t *testing.T) {
	store := memstore.New()
	store.Put(snapshotName, `{"waktu":"2025-05-01T07:30:00.000Z","harga":{"bitcoin":650000000}}`)
	rec := get(setup(store), "/prices/latest")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Equal(t, "2025-05-01T07:30:00.000Z", snap.Time)
	require.InDelta(t, 650000000, snap.Prices["bitcoin"], 1e-9)
}

func TestGetHistory(t *testing.T) {
	store := memstore.New()
	store.Put(historyName, "timestamp,bitcoin,ethereum,solana,usdt\n"+
		"2025-05-01T06:00:00.000Z,1,2,3,4\n"+
		"2025-05-01T07:00:00.000Z,5,6,7,8\n")

	rec := get(setup(store), "/prices/history?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []historyRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, "2025-05-01T07:00:00.000Z", rows[0].Time)
	require.InDelta(t, 8, rows[0].Prices["usdt"], 1e-9)
}

func TestGetHistory_BadLimit(t *testing.T) {
	rec := get(setup(memstore.New()), "/prices/history?limit=abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHistory_Empty(t *testing.T) {
	rec := get(setup(memstore.New()), "/prices/history")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}
