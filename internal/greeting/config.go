// Package greeting assembles and delivers the daily greeting: current
// weather, a generated morning message, and the member mentions it
// addresses.
package greeting

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/good-morning/goodmorning/internal/discord"
	"github.com/good-morning/goodmorning/internal/ollama"
	"github.com/good-morning/goodmorning/internal/weather"
)

// Environment variables that override file values. These match the
// variables the service unit environment is expected to carry.
const (
	EnvDiscordToken = "GOOD_MORNING_DISCORD_TOKEN"
	EnvChannelID    = "GOOD_MORNING_CHANNEL_ID"
	EnvMembers      = "GOOD_MORNING_MEMBERS"
)

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "info"

// Config is the top-level configuration for the greeter. It is populated
// from a YAML configuration file via ParseConfig, with GOOD_MORNING_*
// environment variables taking precedence over file values.
type Config struct {
	// Members is a comma-separated list of name,discord-id pairs.
	Members string `yaml:"members"`

	// LogLevel is the log level: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	Weather weather.Config `yaml:"weather"`
	Ollama  ollama.Config  `yaml:"ollama"`
	Discord discord.Config `yaml:"discord"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.Weather.ApplyDefaults()
	c.Ollama.ApplyDefaults()
	c.Discord.ApplyDefaults()
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.Members == "" {
		return errors.New("greeting: config: members is required")
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Ollama.Validate(); err != nil {
		return err
	}
	if err := c.Discord.Validate(); err != nil {
		return err
	}
	return nil
}

// applyEnvOverrides replaces file values with GOOD_MORNING_* environment
// variables where set.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvDiscordToken); v != "" {
		c.Discord.Token = v
	}
	if v := os.Getenv(EnvChannelID); v != "" {
		c.Discord.ChannelID = v
	}
	if v := os.Getenv(EnvMembers); v != "" {
		c.Members = v
	}
}

// ParseConfig reads a YAML configuration file and returns a Config with
// environment overrides, defaults, and validation applied. A missing file
// is not an error: the greeter can run on environment variables alone.
func ParseConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// env-only operation
	case err != nil:
		return nil, fmt.Errorf("greeting: config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("greeting: config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
