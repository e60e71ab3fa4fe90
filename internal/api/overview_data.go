package api

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lox/goldview/internal/diagnostics"
	"github.com/lox/goldview/internal/forecastapi"
	"github.com/lox/goldview/internal/series"
)

// buildOverview summarises the latest daily price and its change from the
// day before. The difference needs both of the last two entries to carry a
// price; gaps are not bridged.
func buildOverview(snap forecastapi.Snapshot, now time.Time) *OverviewData {
	data := &OverviewData{PanelState: panelState(snap)}
	if snap.State != forecastapi.Succeeded {
		return data
	}

	p := snap.Payload
	if !p.FetchedAt.IsZero() {
		data.FetchedAgo = humanize.RelTime(p.FetchedAt, now, "ago", "from now")
	}

	n := len(p.Daily)
	if n == 0 {
		return data
	}
	latest := p.Daily[n-1]
	if !latest.PricePerGram.Valid {
		return data
	}

	data.HasPrice = true
	data.Price = diagnostics.Currency(latest.PricePerGram.Decimal)
	data.AsOf = latest.Date.Format(series.DailyLabelLayout)

	if n > 1 && p.Daily[n-2].PricePerGram.Valid {
		diff := latest.PricePerGram.Decimal.Sub(p.Daily[n-2].PricePerGram.Decimal)
		data.HasDifference = true
		data.Difference = diagnostics.SignedCurrency(diff)
		data.Rising = !diff.IsNegative()
	}
	return data
}

func panelState(snap forecastapi.Snapshot) PanelState {
	return PanelState{Status: snap.State.String(), Error: snap.Message()}
}
