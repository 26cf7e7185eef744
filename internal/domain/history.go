package domain

type HistoryRow struct {
	Time   string
	Prices Prices
	Rate   *float64
}

// TimeOfDay returns the HH:MM:SS part of the row timestamp.
func (r HistoryRow) TimeOfDay() string {
	if len(r.Time) < 19 {
		return r.Time
	}
	return r.Time[11:19]
}
