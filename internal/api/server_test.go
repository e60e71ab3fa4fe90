package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lox/goldview/internal/api"
	"github.com/lox/goldview/internal/forecastapi"
	"github.com/lox/goldview/internal/series"
)

const payload = `{
  "daily_data": [
    {"Date": "2024-01-02", "Price_per_gram": 6037.5},
    {"Date": "2024-01-03", "Price_per_gram": 6050}
  ],
  "monthly_data": [
    {"Month": "Dec 23", "Start_per_gram": 5850, "End_per_gram": 5950, "Average_per_gram": 5900, "Change_Rs": "100.00", "Percent_change": "1.71%"}
  ],
  "daily_forecast": [6060, 6055, 6080],
  "monthly_forecast": [6000, 6100, 6200],
  "daily_modelType": "Holt Linear",
  "daily_alpha": 0.42,
  "daily_beta": 0.1,
  "daily_phi": null,
  "daily_rmse": null,
  "daily_mae": 7.5,
  "monthly_modelType": "Holt Damped Trend",
  "monthly_alpha": 0.5,
  "monthly_beta": 0.2,
  "monthly_phi": null,
  "monthly_rmse": 30,
  "monthly_mae": 20
}`

var testNow = time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

// setupServer starts a fake forecast service answering with body and
// status, and returns a dashboard server pointed at it.
func setupServer(t *testing.T, status int, body string) (*api.Server, *atomic.Int32) {
	t.Helper()
	hits := &atomic.Int32{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(upstream.Close)

	clock := series.FixedClock(testNow)
	client := forecastapi.NewClient(upstream.URL+"/forecast", 5*time.Second, clock)
	return api.NewServer(client, client.URL(), "8080", clock), hits
}

func get(t *testing.T, srv *api.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	srv, hits := setupServer(t, 200, payload)

	w := get(t, srv, "/health")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"forecast_url"`) {
		t.Error("expected forecast_url field in JSON response")
	}
	if hits.Load() != 0 {
		t.Error("health check should not call the forecast service")
	}
}

func TestIndexPage(t *testing.T) {
	t.Parallel()
	srv, hits := setupServer(t, 200, payload)

	w := get(t, srv, "/")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected one upstream fetch per page, got %d", got)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Gold Price Predictor",
		"₹6,050.00",
		"+₹12.50",
		"2024-01-04",
		"2024-01-06",
		"+10.00",
		"-5.00",
		"Jan", "Feb", "Mar",
		"0.42",
		"Not Applicable",
		"N/A",
		"1.71%",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestIndexPage_UpstreamError(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, 500, "boom")

	w := get(t, srv, "/")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Error loading daily data: HTTP error! status: 500") {
		t.Error("expected daily panel to show the upstream status")
	}
	if !strings.Contains(body, "Error loading monthly data: HTTP error! status: 500") {
		t.Error("expected monthly panel to show the upstream status")
	}
}

func TestIndexPage_NotFound(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, 200, payload)

	if w := get(t, srv, "/nope"); w.Code != 404 {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPartials(t *testing.T) {
	t.Parallel()
	srv, hits := setupServer(t, 200, payload)

	tests := []struct {
		path string
		want string
	}{
		{"/partials/overview", "Gold Price Overview"},
		{"/partials/daily", "Daily Forecast (Next 3 Days)"},
		{"/partials/monthly", "Monthly Forecast"},
	}
	for _, tt := range tests {
		w := get(t, srv, tt.path)
		if w.Code != 200 {
			t.Errorf("%s: expected 200, got %d", tt.path, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), tt.want) {
			t.Errorf("%s: expected body to contain %q", tt.path, tt.want)
		}
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("expected one fetch per partial, got %d", got)
	}
}

func TestMonthlyBadLabelFailsOnlyMonthly(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, 200, strings.Replace(payload, `"Dec 23"`, `"2023-12"`, 1))

	w := get(t, srv, "/api/dashboard")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var dash api.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatal(err)
	}
	if !dash.Monthly.Failed() {
		t.Error("expected monthly panel to fail")
	}
	if dash.Daily.Failed() || dash.Overview.Failed() {
		t.Error("daily and overview panels should still render")
	}
}

func TestAPIDashboard(t *testing.T) {
	t.Parallel()
	srv, hits := setupServer(t, 200, payload)

	w := get(t, srv, "/api/dashboard")
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected one upstream fetch, got %d", got)
	}

	var dash api.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dash.Overview.Price != "₹6,050.00" {
		t.Errorf("overview price = %q", dash.Overview.Price)
	}
	if len(dash.Daily.Forecast) != 3 {
		t.Fatalf("expected 3 daily forecast cards, got %d", len(dash.Daily.Forecast))
	}
	first := dash.Daily.Forecast[0]
	if first.Label != "2024-01-04" || first.Change != "+10.00" || first.Cumulative != "+10.00" {
		t.Errorf("unexpected first card: %+v", first)
	}
	second := dash.Daily.Forecast[1]
	if second.Change != "-5.00" || second.Cumulative != "+5.00" || second.Rising {
		t.Errorf("unexpected second card: %+v", second)
	}
	if got := dash.Monthly.Forecast[0].Label; got != "Jan" {
		t.Errorf("monthly forecast label = %q, want Jan", got)
	}
}

func TestAPIDashboard_AllFailed(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, 503, "")

	w := get(t, srv, "/api/dashboard")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "HTTP error! status: 503") {
		t.Error("expected error message in JSON response")
	}
}
