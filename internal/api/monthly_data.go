package api

import (
	"errors"
	"log"

	"github.com/lox/goldview/internal/diagnostics"
	"github.com/lox/goldview/internal/forecastapi"
	"github.com/lox/goldview/internal/metrics"
	"github.com/lox/goldview/internal/series"
)

// buildMonthly assembles the monthly panel. An unreadable month label fails
// this panel only.
func buildMonthly(snap forecastapi.Snapshot, deriver *series.Deriver) *MonthlyData {
	data := &MonthlyData{PanelState: panelState(snap)}
	if snap.State != forecastapi.Succeeded {
		return data
	}

	p := snap.Payload
	bundle, err := deriver.DeriveMonthly(p.Monthly, p.MonthlyForecast)
	if err != nil {
		var fe *series.FormatError
		if errors.As(err, &fe) {
			log.Printf("api: derive monthly: bad label %q: %v", fe.Label, fe.Err)
		} else {
			log.Printf("api: derive monthly: %v", err)
		}
		metrics.DeriveErrorsTotal.WithLabelValues("monthly").Inc()
		data.Status = forecastapi.Failed.String()
		data.Error = err.Error()
		return data
	}

	data.Bundle = bundle
	data.InsufficientData = bundle.InsufficientData
	data.Chart = chartFromBundle("Monthly Gold Prices and Forecast", "Monthly Average (₹/gram)", bundle)
	data.Model = diagnostics.Rows(p.MonthlyModel)

	// TablePoints is index-aligned with p.Monthly.
	data.Rows = make([]MonthlyRow, len(bundle.TablePoints))
	for i, row := range bundle.TablePoints {
		m := p.Monthly[i]
		data.Rows[i] = MonthlyRow{
			Month:   row.Label,
			Average: row.Display,
			Start:   diagnostics.PriceOrNA(m.StartPerGram),
			End:     diagnostics.PriceOrNA(m.EndPerGram),
			Change:  m.ChangeRs,
			Percent: m.PercentChange,
		}
	}

	// Forecast cards need history to anchor on; without it the panel shows
	// "No forecast data available."
	if len(p.Monthly) > 0 {
		data.Forecast = make([]MonthlyForecastCard, len(bundle.ForecastPoints))
		for i, fp := range bundle.ForecastPoints {
			data.Forecast[i] = MonthlyForecastCard{Label: fp.Label, Price: diagnostics.Currency(fp.Price)}
		}
	}
	return data
}
