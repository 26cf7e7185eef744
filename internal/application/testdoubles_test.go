package application

import (
	"context"
	"errors"
	"time"

	"hargakripto/internal/domain"
)

var ErrBackend = errors.New("backend error")

type fakePriceProvider struct {
	out   domain.Prices
	err   error
	calls int
}

func (f *fakePriceProvider) SpotPrices(_ context.Context, assets []domain.Asset, _ string) (domain.Prices, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := domain.Prices{}
	for _, a := range assets {
		if v, ok := f.out[a.Key]; ok {
			out[a.Key] = v
		}
	}
	return out, nil
}

type fakeRateProvider struct {
	rate float64
	err  error
}

func (f *fakeRateProvider) Rate(context.Context) (float64, error) { return f.rate, f.err }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeGuard struct {
	held     map[string]bool
	released int
	err      error
}

func (g *fakeGuard) TryReserve(_ context.Context, key string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	if g.held == nil {
		g.held = map[string]bool{}
	}
	if g.held[key] {
		return false, nil
	}
	g.held[key] = true
	return true, nil
}

func (g *fakeGuard) Release(_ context.Context, key string) error {
	delete(g.held, key)
	g.released++
	return nil
}

// memStorage is a minimal Storage with write counting and injectable failures.
type memStorage struct {
	files    map[string][]byte
	writes   int
	readErr  error
	writeErr error
}

func newMemStorage() *memStorage { return &memStorage{files: map[string][]byte{}} }

func (m *memStorage) Read(_ context.Context, name string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	b, ok := m.files[name]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (m *memStorage) Write(_ context.Context, name string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[name] = append([]byte(nil), data...)
	m.writes++
	return nil
}

func (m *memStorage) Append(_ context.Context, name string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[name] = append(m.files[name], data...)
	m.writes++
	return nil
}

type stubRenderer struct{}

func (stubRenderer) Render(snap domain.Snapshot, recent []domain.HistoryRow) (string, error) {
	return "\nrendered " + snap.Time + "\n", nil
}
