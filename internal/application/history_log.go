package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"hargakripto/internal/domain"
)

const (
	timestampColumn = "timestamp"
	rateColumn      = "kurs"
)

// HistoryLog is the append-only CSV of committed snapshots.
type HistoryLog struct {
	storage  Storage
	name     string
	assets   []domain.Asset
	withRate bool
}

func NewHistoryLog(storage Storage, name string, assets []domain.Asset, withRate bool) *HistoryLog {
	return &HistoryLog{storage: storage, name: name, assets: assets, withRate: withRate}
}

func (h *HistoryLog) Header() []string {
	cols := []string{timestampColumn}
	for _, a := range h.assets {
		cols = append(cols, a.Key)
	}
	if h.withRate {
		cols = append(cols, rateColumn)
	}
	return cols
}

// Append writes row unless the last row already carries the same timestamp.
// It reports whether a row was written.
func (h *HistoryLog) Append(ctx context.Context, row domain.HistoryRow) (bool, error) {
	data, err := h.storage.Read(ctx, h.name)
	switch {
	case errors.Is(err, ErrNotFound):
		data = encodeRecord(h.Header())
		if err := h.storage.Write(ctx, h.name, data); err != nil {
			return false, E(KindStorage, "history: create "+h.name, err)
		}
	case err != nil:
		return false, E(KindStorage, "history: read "+h.name, err)
	}

	if lastTimestamp(data) == row.Time {
		return false, nil
	}

	line := encodeRecord(h.record(row))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		line = append([]byte("\n"), line...)
	}
	if err := h.storage.Append(ctx, h.name, line); err != nil {
		return false, E(KindStorage, "history: append "+h.name, err)
	}
	return true, nil
}

// Recent returns up to n of the newest rows, oldest first.
func (h *HistoryLog) Recent(ctx context.Context, n int) ([]domain.HistoryRow, error) {
	data, err := h.storage.Read(ctx, h.name)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, E(KindStorage, "history: read "+h.name, err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, E(KindStorage, "history: parse "+h.name, err)
	}
	if len(records) < 2 || n <= 0 {
		return nil, nil
	}

	header := records[0]
	body := records[1:]
	if len(body) > n {
		body = body[len(body)-n:]
	}

	out := make([]domain.HistoryRow, 0, len(body))
	for _, rec := range body {
		out = append(out, parseRecord(header, rec))
	}
	return out, nil
}

func (h *HistoryLog) record(row domain.HistoryRow) []string {
	rec := []string{row.Time}
	for _, a := range h.assets {
		v, ok := row.Prices[a.Key]
		if !ok {
			rec = append(rec, "")
			continue
		}
		rec = append(rec, formatNumber(v))
	}
	if h.withRate {
		if row.Rate == nil {
			rec = append(rec, "")
		} else {
			rec = append(rec, formatNumber(*row.Rate))
		}
	}
	return rec
}

func parseRecord(header, rec []string) domain.HistoryRow {
	row := domain.HistoryRow{Prices: domain.Prices{}}
	for i, col := range header {
		if i >= len(rec) {
			break
		}
		if col == timestampColumn {
			row.Time = rec[i]
			continue
		}
		d, err := decimal.NewFromString(rec[i])
		if err != nil {
			continue
		}
		v := d.InexactFloat64()
		if col == rateColumn {
			row.Rate = &v
			continue
		}
		row.Prices[col] = v
	}
	return row
}

// lastTimestamp returns the first field of the last data row, or "" when the
// log only holds its header.
func lastTimestamp(data []byte) string {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 2 {
		return ""
	}
	last := lines[len(lines)-1]
	if i := strings.IndexByte(last, ','); i >= 0 {
		return strings.TrimSpace(last[:i])
	}
	return strings.TrimSpace(last)
}

func encodeRecord(rec []string) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(rec)
	w.Flush()
	return buf.Bytes()
}

func formatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}
