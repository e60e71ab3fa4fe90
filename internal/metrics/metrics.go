package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ForecastFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldview_forecast_fetches_total",
			Help: "Total requests made to the upstream forecast service",
		},
		[]string{"status"},
	)

	ForecastFetchLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "goldview_forecast_fetch_latency_seconds",
			Help:    "Upstream forecast request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ShapeErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "goldview_shape_errors_total",
			Help: "Total forecast payloads rejected by schema validation",
		},
	)

	DeriveErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldview_derive_errors_total",
			Help: "Total series derivations that failed",
		},
		[]string{"series"},
	)

	StoreSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "goldview_store_subscribers",
			Help: "Consumers currently subscribed to a forecast store",
		},
	)

	PageRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldview_page_renders_total",
			Help: "Total dashboard renders by view and outcome",
		},
		[]string{"view", "outcome"},
	)
)
