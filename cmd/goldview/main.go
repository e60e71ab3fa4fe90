package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/lox/goldview/internal/api"
	"github.com/lox/goldview/internal/cli"
	"github.com/lox/goldview/internal/config"
	"github.com/lox/goldview/internal/forecastapi"
	"github.com/lox/goldview/internal/httputil"
	"github.com/lox/goldview/internal/series"
)

type Globals struct {
	ForecastURL string                   `name:"forecast-url" env:"GOLDVIEW_FORECAST_URL" default:"${forecast_url}" help:"Forecast service endpoint."`
	Timeout     time.Duration            `env:"GOLDVIEW_TIMEOUT" default:"30s" help:"HTTP timeout for forecast requests."`
	Config      kong.ConfigFlag          `help:"Load settings from a YAML file."`
	EnvFile     kongdotenv.ENVFileConfig `kong:"optional,name=env-file,help='Path to .env file'"`
}

func (g *Globals) client() *forecastapi.Client {
	return forecastapi.NewClient(g.ForecastURL, g.Timeout, series.SystemClock)
}

type CLI struct {
	Globals

	Serve ServeCmd `cmd:"" default:"1" help:"Serve the dashboard over HTTP."`
	Show  ShowCmd  `cmd:"" help:"Fetch once and print the dashboard."`
	Check CheckCmd `cmd:"" help:"Check that the forecast backend is reachable."`
}

type ServeCmd struct {
	Port        string        `env:"GOLDVIEW_PORT" default:"8080" help:"HTTP server port."`
	WaitBackend bool          `name:"wait-backend" help:"Wait for the forecast backend before serving."`
	MaxWait     time.Duration `name:"max-wait" default:"1m" help:"Longest time to wait for the backend."`
}

func (c *ServeCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if c.WaitBackend {
		if err := waitBackend(ctx, g.ForecastURL, c.MaxWait); err != nil {
			return err
		}
	}

	server := api.NewServer(g.client(), g.ForecastURL, c.Port, series.SystemClock)
	log.Printf("starting server on :%s (forecast %s)", c.Port, g.ForecastURL)
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	log.Println("shutdown complete")
	return nil
}

type ShowCmd struct {
	Panels []string `enum:"overview,daily,monthly" default:"overview,daily,monthly" help:"Panels to print."`
}

func (c *ShowCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	panels := make([]api.Panel, len(c.Panels))
	for i, p := range c.Panels {
		panels[i] = api.Panel(p)
	}
	dash := api.Assemble(ctx, g.client(), series.SystemClock, panels...)
	cli.Render(os.Stdout, dash)
	return nil
}

type CheckCmd struct {
	Wait    bool          `help:"Retry with backoff until the backend answers."`
	MaxWait time.Duration `name:"max-wait" default:"1m" help:"Longest time to wait with --wait."`
}

func (c *CheckCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if c.Wait {
		if err := waitBackend(ctx, g.ForecastURL, c.MaxWait); err != nil {
			return err
		}
	} else {
		indexURL, err := forecastapi.IndexURL(g.ForecastURL)
		if err != nil {
			return err
		}
		if err := forecastapi.CheckReady(ctx, httputil.NewClient(g.Timeout), indexURL); err != nil {
			return fmt.Errorf("backend not ready: %w", err)
		}
	}
	fmt.Println("backend ready:", g.ForecastURL)
	return nil
}

func waitBackend(ctx context.Context, forecastURL string, maxWait time.Duration) error {
	indexURL, err := forecastapi.IndexURL(forecastURL)
	if err != nil {
		return err
	}
	log.Printf("waiting up to %v for backend at %s", maxWait, indexURL)
	return forecastapi.WaitReady(ctx, httputil.NewClient(httputil.DefaultTimeout), indexURL, maxWait)
}

func main() {
	var c CLI
	kctx := kong.Parse(&c,
		kong.Name("goldview"),
		kong.Description("Gold price dashboard backed by an external forecast service."),
		kong.UsageOnError(),
		kong.Configuration(config.YAML, config.Paths()...),
		kong.Vars{"forecast_url": forecastapi.DefaultURL},
	)
	if err := kctx.Run(&c.Globals); err != nil {
		log.Fatalf("%s: %v", kctx.Command(), err)
	}
}
