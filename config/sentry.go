package config

import (
	"fmt"
	"os"
)

// SentryConfig defines settings for Sentry error monitoring. An empty DSN
// disables reporting.
type SentryConfig struct {
	DSN              string  `json:"dsn"`
	Environment      string  `json:"environment"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
	Release          string  `json:"release"`
}

// SetDefaults falls back to the APP_ENV environment name, matching the
// logger's environment detection.
func (c *SentryConfig) SetDefaults() {
	if c.Environment == "" {
		c.Environment = os.Getenv("APP_ENV")
	}
}

// Validate checks the sample rate bounds.
func (c SentryConfig) Validate() error {
	if c.TracesSampleRate < 0 || c.TracesSampleRate > 1 {
		return fmt.Errorf("traces_sample_rate must be between 0 and 1: %v", c.TracesSampleRate)
	}
	return nil
}
