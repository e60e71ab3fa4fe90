package api

import (
	"log"

	"github.com/lox/goldview/internal/diagnostics"
	"github.com/lox/goldview/internal/forecastapi"
	"github.com/lox/goldview/internal/metrics"
	"github.com/lox/goldview/internal/series"
)

const amber = "#f59e0b"

// buildDaily assembles the daily panel. Forecast cards compare each day
// with the one before it (the first against the last historical price) and
// with the last historical price overall.
func buildDaily(snap forecastapi.Snapshot, deriver *series.Deriver) *DailyData {
	data := &DailyData{PanelState: panelState(snap)}
	if snap.State != forecastapi.Succeeded {
		return data
	}

	p := snap.Payload
	bundle, err := deriver.DeriveDaily(p.Daily, p.DailyForecast)
	if err != nil {
		log.Printf("api: derive daily: %v", err)
		metrics.DeriveErrorsTotal.WithLabelValues("daily").Inc()
		data.Status = forecastapi.Failed.String()
		data.Error = err.Error()
		return data
	}

	data.Bundle = bundle
	data.InsufficientData = bundle.InsufficientData
	data.Chart = chartFromBundle("Historical Daily Gold Prices", "Daily Price (₹/gram)", bundle)
	data.Model = diagnostics.Rows(p.DailyModel)

	data.Rows = make([]DailyRow, len(bundle.TablePoints))
	for i, row := range bundle.TablePoints {
		data.Rows[i] = DailyRow{Date: row.Label, Price: row.Display}
	}

	values := bundle.ForecastValues()
	steps := series.SeededStepChange(values, bundle.Baseline)
	cumulative := series.CumulativeChange(values, bundle.Baseline)
	data.Forecast = make([]DailyForecastCard, len(bundle.ForecastPoints))
	for i, fp := range bundle.ForecastPoints {
		data.Forecast[i] = DailyForecastCard{
			Label:      fp.Label,
			Price:      diagnostics.Currency(fp.Price),
			Change:     diagnostics.Delta(steps[i]),
			Cumulative: diagnostics.Delta(cumulative[i]),
			Rising:     steps[i].Valid && !steps[i].Decimal.IsNegative(),
		}
	}
	return data
}

func chartFromBundle(title, name string, b *series.Bundle) ChartData {
	chart := ChartData{
		Title:  title,
		Labels: make([]string, len(b.ChartPoints)),
		Series: []ChartSeries{{Name: name, Data: make([]float64, len(b.ChartPoints)), Color: amber}},
	}
	for i, pt := range b.ChartPoints {
		chart.Labels[i] = pt.Label
		chart.Series[0].Data[i] = pt.Price.InexactFloat64()
	}
	return chart
}
