// Package ollama is a minimal client for the Ollama generate-completion API.
package ollama

import (
	"errors"
	"time"
)

// Config holds the configuration for the Ollama client.
// Config is passed as a constructor argument — no file I/O in this package.
type Config struct {
	// BaseURL is the Ollama server base URL.
	// Default: http://localhost:11434
	BaseURL string `yaml:"base_url"`

	// Model is the model used for generation.
	// Default: llama3
	Model string `yaml:"model"`

	// RequestTimeout is the maximum time for a complete generation request.
	// Local LLM completions are slow; the default is generous.
	// Default: 120s
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultBaseURL is the default Ollama server URL.
const DefaultBaseURL = "http://localhost:11434"

// DefaultModel is the default generation model.
const DefaultModel = "llama3"

// DefaultRequestTimeout is the default generation request timeout.
const DefaultRequestTimeout = 120 * time.Second

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("ollama: config: BaseURL is required")
	}
	if c.Model == "" {
		return errors.New("ollama: config: Model is required")
	}
	return nil
}
