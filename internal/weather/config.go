// Package weather fetches the current weather from the Open-Meteo API and
// renders it as a short human-readable summary.
package weather

import (
	"errors"
	"time"
)

// Config holds the configuration for the weather client.
// Config is passed as a constructor argument — no file I/O in this package.
type Config struct {
	// BaseURL is the Open-Meteo API base URL.
	// Default: https://api.open-meteo.com
	BaseURL string `yaml:"base_url"`

	// Latitude and Longitude select the forecast location.
	// Default: 55.7558 / 37.6173 (Moscow)
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`

	// RequestTimeout is the maximum time for a complete HTTP request/response cycle.
	// Default: 10s
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultBaseURL is the default Open-Meteo API base URL.
const DefaultBaseURL = "https://api.open-meteo.com"

// Default forecast location.
const (
	DefaultLatitude  = 55.7558
	DefaultLongitude = 37.6173
)

// DefaultRequestTimeout is the default HTTP request timeout.
const DefaultRequestTimeout = 10 * time.Second

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Latitude == 0 && c.Longitude == 0 {
		c.Latitude = DefaultLatitude
		c.Longitude = DefaultLongitude
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("weather: config: BaseURL is required")
	}
	return nil
}
