package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// TimeLayout is the ISO-8601 form snapshots and history rows are stamped with.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Prices maps an asset Key to its price in the quote currency.
type Prices map[string]float64

type Snapshot struct {
	Time   string   `json:"waktu"`
	Prices Prices   `json:"harga"`
	Rate   *float64 `json:"kurs,omitempty"`
}

func NewSnapshot(at time.Time, prices Prices, rate *float64) Snapshot {
	return Snapshot{Time: Stamp(at), Prices: prices, Rate: rate}
}

func Stamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func (s Snapshot) IsZero() bool {
	return s.Time == "" && len(s.Prices) == 0 && s.Rate == nil
}

// Equal reports whether two snapshots carry the same reading. The timestamp is
// not part of the comparison.
func (s Snapshot) Equal(o Snapshot) bool {
	a, errA := s.canonicalPrices()
	b, errB := o.canonicalPrices()
	if errA != nil || errB != nil || !bytes.Equal(a, b) {
		return false
	}
	switch {
	case s.Rate == nil && o.Rate == nil:
		return true
	case s.Rate == nil || o.Rate == nil:
		return false
	default:
		return *s.Rate == *o.Rate
	}
}

// canonicalPrices encodes the price map with sorted keys.
func (s Snapshot) canonicalPrices() ([]byte, error) {
	if s.Prices == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.Prices)
}

func (s Snapshot) Row() HistoryRow {
	return HistoryRow{Time: s.Time, Prices: s.Prices, Rate: s.Rate}
}
