// Package config loads the catalog configuration from yaml or json files
// with environment variable overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jmorel/catalog/core/registry"
)

type Config struct {
	Catalog CatalogConfig `json:"catalog"`
	Observe ObserveConfig `json:"observe"`
	Logging LoggingConfig `json:"logging"`
	Sentry  SentryConfig  `json:"sentry"`
}

// CatalogConfig selects the enabled kinds and lists the items materialized at
// startup.
type CatalogConfig struct {
	// Kinds restricts the catalog to the named built-in kinds. Empty means
	// all of them.
	Kinds []string `json:"kinds"`
	// Items are built by app.Materialize in declaration order.
	Items []registry.Spec `json:"items"`
}

// ObserveConfig defines the sinks recording catalog activity.
type ObserveConfig struct {
	Sinks []registry.Spec `json:"sinks"`
	// PrometheusAddr enables the /metrics endpoint when non-empty.
	PrometheusAddr string `json:"prometheus_addr"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides. The callback rewrites __ to the koanf
	// path delimiter, so the provider must split on "." for the keys to nest.
	if err := k.Load(env.Provider("CATALOG_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "catalog_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Sentry.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Sentry.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks item specs for obvious mistakes before any factory runs.
func (c CatalogConfig) Validate() error {
	for i, it := range c.Items {
		if it.Kind == "" {
			return fmt.Errorf("catalog item %d: kind is required", i)
		}
	}
	return nil
}
