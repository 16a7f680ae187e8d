package llm

import (
	"fmt"
	"time"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/resilience"
)

// Config holds configuration for creating an LLM client.
// It is provider-agnostic. The Dialect field selects the provider mapping.
type Config struct {
	// Name identifies this client instance (e.g., "primary-llm").
	Name string `yaml:"name" mapstructure:"name"`

	// Dialect selects the provider mapping (e.g., "openai", "ollama").
	// Must match a dialect registered via RegisterDialect.
	Dialect string `yaml:"dialect" mapstructure:"dialect"`

	// BaseURL is the provider's API base URL (e.g., "https://openrouter.ai/api/v1").
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// APIKey is sent as a Bearer token when set.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// Model is the default model to use (e.g., "gpt-4o-mini", "llama3").
	Model string `yaml:"model" mapstructure:"model"`

	// Temperature is the default sampling temperature (0.0-1.0).
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`

	// MaxTokens is the default maximum tokens for responses. 0 means provider default.
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// Timeout for HTTP requests. Defaults to 120s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are additional HTTP headers sent with every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Retry configures retry behavior for failed requests. Nil disables retry.
	Retry *resilience.RetryConfig `yaml:"retry" mapstructure:"retry"`
}

// ApplyDefaults sets default values for unset config fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 120 * time.Second
	}
	if c.Name == "" && c.Dialect != "" {
		c.Name = c.Dialect + "-llm"
	}
}

// Validate checks that the config can produce a usable client.
func (c *Config) Validate() error {
	if c.Dialect == "" {
		return fmt.Errorf("llm.dialect is required")
	}
	if _, err := GetDialect(c.Dialect); err != nil {
		return err
	}
	if c.BaseURL == "" {
		return fmt.Errorf("llm.base_url is required")
	}
	if c.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	return nil
}
