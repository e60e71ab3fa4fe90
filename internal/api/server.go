package api

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lox/goldview/internal/forecastapi"
	"github.com/lox/goldview/internal/series"
)

type Server struct {
	fetcher     forecastapi.Fetcher
	forecastURL string
	port        string
	clock       series.Clock
	tmpl        *template.Template
}

func NewServer(fetcher forecastapi.Fetcher, forecastURL, port string, clock series.Clock) *Server {
	if clock == nil {
		clock = series.SystemClock
	}
	return &Server{
		fetcher:     fetcher,
		forecastURL: forecastURL,
		port:        port,
		clock:       clock,
		tmpl:        newTemplates(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/partials/overview", s.handlePartial(PanelOverview))
	mux.HandleFunc("/partials/daily", s.handlePartial(PanelDaily))
	mux.HandleFunc("/partials/monthly", s.handlePartial(PanelMonthly))
	mux.HandleFunc("/api/dashboard", s.handleAPIDashboard)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
