package api

import (
	"context"
	"sync"

	"github.com/lox/goldview/internal/forecastapi"
	"github.com/lox/goldview/internal/series"
)

// Panel names a dashboard consumer.
type Panel string

const (
	PanelOverview Panel = "overview"
	PanelDaily    Panel = "daily"
	PanelMonthly  Panel = "monthly"
)

// AllPanels lists every panel of the full page.
var AllPanels = []Panel{PanelOverview, PanelDaily, PanelMonthly}

// Assemble builds the requested panels from one fetch. Every panel subscribes
// to the same new store and renders its own state from it. Nothing is reused
// across calls.
func Assemble(ctx context.Context, fetcher forecastapi.Fetcher, clock series.Clock, panels ...Panel) *Dashboard {
	if clock == nil {
		clock = series.SystemClock
	}
	store := forecastapi.NewStore(fetcher)
	deriver := series.NewDeriver(clock)

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		dash = &Dashboard{}
	)
	for _, panel := range panels {
		wg.Add(1)
		go func(panel Panel) {
			defer wg.Done()
			sub := store.Subscribe(ctx)
			defer sub.Close()

			// A consumer that stops waiting keeps the pending state.
			snap, _ := sub.Wait(ctx)

			mu.Lock()
			defer mu.Unlock()
			switch panel {
			case PanelOverview:
				dash.Overview = buildOverview(snap, clock.Now())
			case PanelDaily:
				dash.Daily = buildDaily(snap, deriver)
			case PanelMonthly:
				dash.Monthly = buildMonthly(snap, deriver)
			}
		}(panel)
	}
	wg.Wait()
	return dash
}
