package api

import (
	"log"
	"net/http"

	"github.com/lox/goldview/internal/metrics"
)

// IndexData wraps the dashboard with page-level data.
type IndexData struct {
	*Dashboard
	ForecastURL string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	dash := Assemble(r.Context(), s.fetcher, s.clock, AllPanels...)
	recordRender("index", dash)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", IndexData{Dashboard: dash, ForecastURL: s.forecastURL}); err != nil {
		log.Printf("api: template error: %v", err)
	}
}

func (s *Server) handlePartial(panel Panel) http.HandlerFunc {
	name := string(panel) + ".html"
	return func(w http.ResponseWriter, r *http.Request) {
		dash := Assemble(r.Context(), s.fetcher, s.clock, panel)
		recordRender(string(panel), dash)

		var data any
		switch panel {
		case PanelOverview:
			data = dash.Overview
		case PanelDaily:
			data = dash.Daily
		case PanelMonthly:
			data = dash.Monthly
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
			log.Printf("api: template error: %v", err)
		}
	}
}

func recordRender(view string, dash *Dashboard) {
	outcome := "ok"
	for _, st := range dash.states() {
		if st.Failed() {
			outcome = "error"
			break
		}
	}
	metrics.PageRendersTotal.WithLabelValues(view, outcome).Inc()
}

func (d *Dashboard) states() []PanelState {
	var states []PanelState
	if d.Overview != nil {
		states = append(states, d.Overview.PanelState)
	}
	if d.Daily != nil {
		states = append(states, d.Daily.PanelState)
	}
	if d.Monthly != nil {
		states = append(states, d.Monthly.PanelState)
	}
	return states
}
