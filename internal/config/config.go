// Package config loads goldview settings from YAML files into kong flags.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// Paths returns the config files consulted by default, lowest priority first.
func Paths() []string {
	paths := []string{"goldview.yaml"}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return append(paths, filepath.Join(xdg, "goldview", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "goldview", "config.yaml"))
	}
	return paths
}

// YAML is a kong.ConfigurationLoader. Keys match flag names with dashes or
// underscores, and nested maps address dotted names:
//
//	forecast_url: http://localhost:5001/forecast
//	serve:
//	  port: "8080"
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if raw, ok := lookup(values, flag.Name); ok {
			return scalar(raw), nil
		}
		// Command flags may also be nested under the command name.
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if raw, ok := lookup(section, flag.Name); ok {
					return scalar(raw), nil
				}
			}
		}
		return nil, nil
	}
	return f, nil
}

func lookup(values map[string]any, name string) (any, bool) {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		if raw, ok := values[key]; ok {
			return raw, true
		}
	}

	var raw any = values
	for _, part := range strings.Split(strings.ReplaceAll(name, "-", "_"), ".") {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, false
		}
		if raw, ok = m[part]; !ok {
			return nil, false
		}
	}
	return raw, true
}

// scalar hands kong flag text; YAML decodes 8080 as an int and 30s as a string.
func scalar(raw any) any {
	switch v := raw.(type) {
	case map[string]any, []any, string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
