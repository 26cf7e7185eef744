package render

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const rupiahSymbol = "Rp"

// displayLayout mirrors the id-ID short date/time form, e.g. "1/5/2025, 14.30.00".
const displayLayout = "2/1/2006, 15.04.05"

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders v with Indonesian digit grouping and no fraction
// digits: 650000000 becomes "Rp650.000.000".
func FormatRupiah(v float64) string {
	n := decimal.NewFromFloat(v).Round(0).IntPart()
	if n < 0 {
		return "-" + rupiahSymbol + idPrinter.Sprintf("%d", -n)
	}
	return rupiahSymbol + idPrinter.Sprintf("%d", n)
}

// FormatTimestamp renders an ISO-8601 instant in loc. Unparsable input is
// returned unchanged.
func FormatTimestamp(iso string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return iso
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(displayLayout)
}
