// File path: internal/llm/llm.go
package llm

import (
	"github.com/rfplab/rfpgen/internal/common"
	"github.com/rfplab/rfpgen/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

// NewProvider selects the hosted provider when an API key is configured and
// falls back to the local provider otherwise. The local provider declines
// every call, so the conversation runs on deterministic replies alone.
func NewProvider(cfg Config) Provider {
	logger := common.Logger()
	cfg.applyDefaults()
	if cfg.APIKey == "" {
		logger.Warn("llm: no API key configured; using local provider")
		return providers.NewLocalProvider()
	}
	logger.Info("llm: OpenAI provider selected", "model", cfg.Model, "timeout", cfg.Timeout)
	return providers.NewOpenAIProvider(providers.OpenAIOptions{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
}
