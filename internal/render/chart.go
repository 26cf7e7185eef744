package render

import (
	"encoding/json"
	"net/url"
	"strings"
)

const DefaultChartBaseURL = "https://quickchart.io/chart"

type chartConfig struct {
	Type string    `json:"type"`
	Data chartData `json:"data"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

type chartDataset struct {
	Label       string    `json:"label"`
	Data        []float64 `json:"data"`
	Fill        bool      `json:"fill"`
	BorderColor string    `json:"borderColor"`
	Tension     float64   `json:"tension"`
}

// ChartURL returns an image URL for a single-series line chart.
func ChartURL(base string, labels []string, values []float64, label string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	if values == nil {
		values = []float64{}
	}
	cfg := chartConfig{
		Type: "line",
		Data: chartData{
			Labels: labels,
			Datasets: []chartDataset{{
				Label:       label,
				Data:        values,
				Fill:        false,
				BorderColor: "blue",
				Tension:     0.1,
			}},
		},
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return base + "?c=" + escapeComponent(string(b)), nil
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
