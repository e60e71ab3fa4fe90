package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
)

type testCLI struct {
	ForecastURL string        `name:"forecast-url" default:"http://localhost:5001/forecast"`
	Timeout     time.Duration `default:"30s"`

	Serve struct {
		Port string `default:"8080"`
	} `cmd:""`
}

func parse(t *testing.T, yamlText string, args ...string) *testCLI {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yamlText), 0o644); err != nil {
		t.Fatal(err)
	}

	var cli testCLI
	parser, err := kong.New(&cli, kong.Configuration(YAML, path), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return &cli
}

func TestYAML(t *testing.T) {
	cli := parse(t, `
forecast_url: http://gold.internal/forecast
timeout: 5s
serve:
  port: 9090
`, "serve")

	if cli.ForecastURL != "http://gold.internal/forecast" {
		t.Errorf("ForecastURL = %q", cli.ForecastURL)
	}
	if cli.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cli.Timeout)
	}
	if cli.Serve.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cli.Serve.Port)
	}
}

func TestYAML_FlagsOverrideFile(t *testing.T) {
	cli := parse(t, "forecast-url: http://from-file/forecast\n", "--forecast-url=http://from-flag/forecast", "serve")
	if cli.ForecastURL != "http://from-flag/forecast" {
		t.Errorf("ForecastURL = %q, want flag value", cli.ForecastURL)
	}
	if cli.Serve.Port != "8080" {
		t.Errorf("Port = %q, want default", cli.Serve.Port)
	}
}

func TestYAML_Empty(t *testing.T) {
	if _, err := YAML(strings.NewReader("")); err != nil {
		t.Errorf("empty config should load, got %v", err)
	}
}

func TestYAML_Invalid(t *testing.T) {
	if _, err := YAML(strings.NewReader("a: [b")); err == nil {
		t.Error("expected parse error")
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	paths := Paths()
	if paths[0] != "goldview.yaml" {
		t.Errorf("first path = %q", paths[0])
	}
	if paths[len(paths)-1] != filepath.Join("/tmp/xdg", "goldview", "config.yaml") {
		t.Errorf("last path = %q", paths[len(paths)-1])
	}
}
