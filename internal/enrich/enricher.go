// File path: internal/enrich/enricher.go
package enrich

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rfplab/rfpgen/internal/common"
	"github.com/rfplab/rfpgen/internal/llm"
	"github.com/rfplab/rfpgen/internal/rfp"
)

const (
	historyWindow      = 8
	minAcceptedItems   = 3
	maxAcceptedItems   = 15
	splitPercentile    = 0.6
	defaultCallTimeout = 20 * time.Second
)

// Enricher optionally improves deterministic turn output with a hosted model.
// Every failure mode collapses to "no enrichment": the caller's deterministic
// values always stand, so the conversation progresses regardless of model
// availability.
type Enricher struct {
	provider llm.Provider
	timeout  time.Duration
}

func New(provider llm.Provider, timeout time.Duration) *Enricher {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Enricher{provider: provider, timeout: timeout}
}

// Reply is a model-composed two-part turn reply.
type Reply struct {
	Analysis string
	Question string
}

// SuggestFeatures asks the model for a prioritized feature list derived from
// the project overview. The result is accepted only when it parses as at
// least three well-formed items; otherwise the caller keeps the
// deterministic parser output.
func (e *Enricher) SuggestFeatures(ctx context.Context, overview string) ([]rfp.FeatureItem, bool) {
	logger := common.Logger()
	if e == nil || e.provider == nil || strings.TrimSpace(overview) == "" {
		return nil, false
	}
	prompt, err := featurePrompt.Format(map[string]any{"overview": strings.TrimSpace(overview)})
	if err != nil {
		logger.Warn("enrich: feature prompt format failed", "error", err)
		return nil, false
	}
	raw, ok := e.chat(ctx, prompt)
	if !ok {
		return nil, false
	}
	items := parseFeatureJSON(raw)
	if len(items) < minAcceptedItems {
		logger.Debug("enrich: feature list rejected", "parsed", len(items))
		return nil, false
	}
	if len(items) > maxAcceptedItems {
		items = items[:maxAcceptedItems]
	}
	logger.Info("enrich: feature list accepted", "items", len(items))
	return items, true
}

// ComposeReply asks the model for feedback on the user's last answer plus the
// next question. The deterministic answer-update and topic-advance decision
// are never affected; only the reply text may be replaced.
func (e *Enricher) ComposeReply(ctx context.Context, history []rfp.Message, current, next rfp.Topic, featuresGenerated bool) (*Reply, bool) {
	logger := common.Logger()
	if e == nil || e.provider == nil {
		return nil, false
	}
	featureNote := ""
	if featuresGenerated {
		featureNote = "방금 개요를 바탕으로 기능 목록 초안이 생성되어 사용자에게 함께 전달됩니다."
	}
	prompt, err := replyPrompt.Format(map[string]any{
		"current_topic": current.Label,
		"next_topic":    next.Label,
		"feature_note":  featureNote,
		"history":       renderHistory(history),
	})
	if err != nil {
		logger.Warn("enrich: reply prompt format failed", "error", err)
		return nil, false
	}
	raw, ok := e.chat(ctx, prompt)
	if !ok {
		return nil, false
	}
	if reply := parseReplyJSON(raw); reply != nil {
		return reply, true
	}
	// Partial parse: treat the raw text itself as the reply, split at the
	// 60th-percentile line boundary.
	if reply := splitReply(raw); reply != nil {
		logger.Debug("enrich: reply recovered from plain text")
		return reply, true
	}
	logger.Debug("enrich: reply rejected")
	return nil, false
}

func (e *Enricher) chat(ctx context.Context, prompt string) (string, bool) {
	logger := common.Logger()
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	raw, err := e.provider.Chat(callCtx, []llm.Message{{Role: "user", Content: prompt}})
	if err != nil {
		logger.Warn("enrich: model call failed", "provider", e.provider.Name(), "error", err)
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	return raw, true
}

func renderHistory(history []rfp.Message) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		role := "사용자"
		if msg.Role == "assistant" {
			role = "상담원"
		}
		lines = append(lines, role+": "+strings.TrimSpace(msg.Content))
	}
	return strings.Join(lines, "\n")
}

func parseFeatureJSON(raw string) []rfp.FeatureItem {
	payload := extractDelimited(stripFences(raw), '[', ']')
	if payload == "" {
		return nil
	}
	var decoded []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil
	}
	items := make([]rfp.FeatureItem, 0, len(decoded))
	for i, entry := range decoded {
		name := strings.TrimSpace(entry.Name)
		desc := strings.TrimSpace(entry.Description)
		if name == "" || desc == "" {
			continue
		}
		items = append(items, rfp.FeatureItem{
			Name:        name,
			Description: desc,
			Priority:    normalizePriority(entry.Priority, i),
		})
	}
	return items
}

func normalizePriority(raw string, rank int) rfp.Priority {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "P1":
		return rfp.PriorityP1
	case "P2":
		return rfp.PriorityP2
	case "P3":
		return rfp.PriorityP3
	}
	// Missing or invalid tier: fall back to the rank-based assignment the
	// deterministic parser uses.
	switch {
	case rank < 2:
		return rfp.PriorityP1
	case rank < 4:
		return rfp.PriorityP2
	default:
		return rfp.PriorityP3
	}
}

func parseReplyJSON(raw string) *Reply {
	payload := extractDelimited(stripFences(raw), '{', '}')
	if payload == "" {
		return nil
	}
	var decoded struct {
		Analysis string `json:"analysis"`
		Question string `json:"question"`
	}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil
	}
	analysis := strings.TrimSpace(decoded.Analysis)
	question := strings.TrimSpace(decoded.Question)
	if analysis == "" || question == "" {
		return nil
	}
	return &Reply{Analysis: analysis, Question: question}
}

func splitReply(raw string) *Reply {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	boundary := int(float64(len(lines)) * splitPercentile)
	if boundary <= 0 || boundary >= len(lines) {
		return nil
	}
	analysis := strings.TrimSpace(strings.Join(lines[:boundary], "\n"))
	question := strings.TrimSpace(strings.Join(lines[boundary:], "\n"))
	if analysis == "" || question == "" {
		return nil
	}
	return &Reply{Analysis: analysis, Question: question}
}

func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func extractDelimited(raw string, open, closing byte) string {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, closing)
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
