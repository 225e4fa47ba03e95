// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"fmt"
)

type Message struct {
	Role    string
	Content string
}

type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// ErrNoModel is returned by LocalProvider for every chat call.
var ErrNoModel = fmt.Errorf("local provider has no model")

// LocalProvider stands in when no API key is configured. It satisfies the
// interface but declines every chat call, so callers take their
// deterministic fallback path instead of surfacing stub text to users.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	return "", ErrNoModel
}

func (l *LocalProvider) Name() string {
	return "local"
}
