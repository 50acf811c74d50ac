// Package discord posts messages to a Discord channel through the bot API.
package discord

import (
	"errors"
	"time"
)

// Config holds the configuration for the Discord client.
// Config is passed as a constructor argument — no file I/O in this package.
type Config struct {
	// BaseURL is the Discord API base URL.
	// Default: https://discord.com
	BaseURL string `yaml:"base_url"`

	// Token is the bot token sent in the Authorization header (required).
	Token string `yaml:"token"`

	// ChannelID is the target channel (required).
	ChannelID string `yaml:"channel_id"`

	// RequestTimeout is the maximum time for a complete HTTP request/response cycle.
	// Default: 30s
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultBaseURL is the default Discord API base URL.
const DefaultBaseURL = "https://discord.com"

// DefaultRequestTimeout is the default HTTP request timeout.
const DefaultRequestTimeout = 30 * time.Second

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.New("discord: config: Token is required")
	}
	if c.ChannelID == "" {
		return errors.New("discord: config: ChannelID is required")
	}
	return nil
}
