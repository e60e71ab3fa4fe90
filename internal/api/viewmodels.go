package api

import (
	"github.com/lox/goldview/internal/diagnostics"
	"github.com/lox/goldview/internal/series"
)

// Dashboard contains everything needed to render the dashboard page.
type Dashboard struct {
	Overview *OverviewData `json:"overview"`
	Daily    *DailyData    `json:"daily"`
	Monthly  *MonthlyData  `json:"monthly"`
}

// PanelState is the loading/error/data state of one panel.
type PanelState struct {
	Status string `json:"status"` // "pending", "failed" or "succeeded"
	Error  string `json:"error,omitempty"`
}

func (p PanelState) Loading() bool { return p.Status == "pending" }
func (p PanelState) Failed() bool { return p.Status == "failed" }

// OverviewData is the current-price summary.
type OverviewData struct {
	PanelState
	HasPrice      bool   `json:"has_price"`
	Price         string `json:"price,omitempty"`
	HasDifference bool   `json:"has_difference"`
	Difference    string `json:"difference,omitempty"` // "+₹12.50"
	Rising        bool   `json:"rising"`
	AsOf          string `json:"as_of,omitempty"`
	FetchedAgo    string `json:"fetched_ago,omitempty"`
}

// DailyData contains the daily series, its forecast cards and model details.
type DailyData struct {
	PanelState
	Bundle           *series.Bundle      `json:"bundle,omitempty"`
	Chart            ChartData           `json:"chart"`
	InsufficientData bool                `json:"insufficient_data"`
	Rows             []DailyRow          `json:"rows"`
	Forecast         []DailyForecastCard `json:"forecast"`
	Model            []diagnostics.Row   `json:"model"`
}

// DailyRow is one row of the daily price table.
type DailyRow struct {
	Date  string `json:"date"`
	Price string `json:"price"`
}

// DailyForecastCard is one forecast day with its deltas.
type DailyForecastCard struct {
	Label      string `json:"label"`
	Price      string `json:"price"`
	Change     string `json:"change"`     // vs the previous day, seeded by the last historical price
	Cumulative string `json:"cumulative"` // vs the last historical price
	Rising     bool   `json:"rising"`
}

// MonthlyData contains the monthly series, its forecast cards and model details.
type MonthlyData struct {
	PanelState
	Bundle           *series.Bundle        `json:"bundle,omitempty"`
	Chart            ChartData             `json:"chart"`
	InsufficientData bool                  `json:"insufficient_data"`
	Rows             []MonthlyRow          `json:"rows"`
	Forecast         []MonthlyForecastCard `json:"forecast"`
	Model            []diagnostics.Row     `json:"model"`
}

// MonthlyRow is one row of the monthly price table.
type MonthlyRow struct {
	Month   string `json:"month"`
	Average string `json:"average"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Change  string `json:"change"`
	Percent string `json:"percent"`
}

// MonthlyForecastCard carries no deltas; only daily forecasts are compared
// against history.
type MonthlyForecastCard struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

// ChartData contains data for a price chart.
type ChartData struct {
	Title  string        `json:"title"`
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// ChartSeries represents a single series in the chart.
type ChartSeries struct {
	Name  string    `json:"name"`
	Data  []float64 `json:"data"`
	Color string    `json:"color"`
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status      string `json:"status"`
	ForecastURL string `json:"forecast_url"`
}
