// File path: internal/llm/config.go
package llm

import (
	"os"
	"strings"
	"time"
)

// Config carries everything needed to construct a provider. It is built once
// in main and passed in explicitly; no package-level client is created from
// the environment at load time.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

const (
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 30 * time.Second
)

// LoadConfig reads the provider configuration from the environment. An empty
// API key is valid and selects the deterministic local provider.
func LoadConfig() Config {
	cfg := Config{
		APIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Model:   strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL")),
		BaseURL: strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")),
	}
	if raw := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cfg.Timeout = parsed
		}
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}
