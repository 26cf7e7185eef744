package render

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"hargakripto/internal/domain"
)

const sectionTemplate = `
### 📈 Harga Kripto Terbaru (dalam Rupiah)

| Koin | Harga |
|------|-------|
{{- range .Rows}}
| {{.Badge}} {{.Name}} ({{.Ticker}}) | {{.Price}} |
{{- end}}
{{- if .Rate}}

<sub>Kurs USD/IDR: {{.Rate}}</sub>
{{- end}}

<sub>Terakhir diperbarui: {{.UpdatedAt}}</sub>
{{- if .Charts}}

---
{{- range .Charts}}

#### 📉 Grafik Harga {{.Ticker}} ({{$.Points}} update terakhir)
![{{.Ticker}} Chart]({{.URL}})
{{- end}}
{{- end}}
`

var sectionTmpl = template.Must(template.New("section").Parse(sectionTemplate))

type Renderer struct {
	Location     *time.Location
	Assets       []domain.Asset
	ChartAssets  []domain.Asset
	ChartBaseURL string
}

type priceRow struct {
	Badge, Name, Ticker, Price string
}

type chartLink struct {
	Ticker, URL string
}

type sectionView struct {
	Rows      []priceRow
	Rate      string
	UpdatedAt string
	Points    int
	Charts    []chartLink
}

// Render returns the text that belongs between the section markers.
func (r Renderer) Render(snap domain.Snapshot, recent []domain.HistoryRow) (string, error) {
	assets := r.Assets
	if assets == nil {
		assets = domain.Assets
	}
	view := sectionView{
		UpdatedAt: FormatTimestamp(snap.Time, r.Location),
		Points:    len(recent),
	}
	for _, a := range assets {
		price := "-"
		if v, ok := snap.Prices[a.Key]; ok {
			price = FormatRupiah(v)
		}
		view.Rows = append(view.Rows, priceRow{Badge: a.Badge, Name: a.Name, Ticker: a.Ticker, Price: price})
	}
	if snap.Rate != nil {
		view.Rate = FormatRupiah(*snap.Rate)
	}

	if len(recent) > 0 {
		base := r.ChartBaseURL
		if base == "" {
			base = DefaultChartBaseURL
		}
		labels := make([]string, 0, len(recent))
		for _, row := range recent {
			labels = append(labels, row.TimeOfDay())
		}
		for _, a := range r.ChartAssets {
			values := make([]float64, 0, len(recent))
			for _, row := range recent {
				values = append(values, row.Prices[a.Key])
			}
			u, err := ChartURL(base, labels, values, a.Name)
			if err != nil {
				return "", fmt.Errorf("chart %s: %w", a.Ticker, err)
			}
			view.Charts = append(view.Charts, chartLink{Ticker: a.Ticker, URL: u})
		}
	}

	var b strings.Builder
	if err := sectionTmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("execute section template: %w", err)
	}
	return b.String(), nil
}
