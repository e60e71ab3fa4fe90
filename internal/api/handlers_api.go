package api

import (
	"encoding/json"
	"net/http"
)

// handleAPIDashboard returns the view-models as JSON. A failed fetch still
// answers 200 with each panel carrying its error; 502 is reserved for the
// case where no panel could be built from the upstream payload.
func (s *Server) handleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	dash := Assemble(r.Context(), s.fetcher, s.clock, AllPanels...)
	recordRender("api", dash)

	status := http.StatusOK
	if allFailed(dash.states()) {
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dash)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthStatus{Status: "ok", ForecastURL: s.forecastURL})
}

func allFailed(states []PanelState) bool {
	if len(states) == 0 {
		return false
	}
	for _, st := range states {
		if !st.Failed() {
			return false
		}
	}
	return true
}
