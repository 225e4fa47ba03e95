// File path: internal/rfp/parser.go
package rfp

import "strings"

const maxParsedFeatures = 5

// ParseFeatures extracts a prioritized feature list from free text without
// any model involvement. The text is split on line breaks, commas, and common
// list bullets; the first five non-empty tokens survive in source order. The
// first two items are assumed highest priority, the next two medium, the rest
// low. Never fails: malformed input simply yields fewer items.
//
// Hyphens are deliberately not split characters: a leading "-" is stripped
// as a list bullet, but an inline hyphen is kept so hyphenated feature names
// stay one token.
func ParseFeatures(text string) []FeatureItem {
	tokens := splitFeatureTokens(text)
	if len(tokens) > maxParsedFeatures {
		tokens = tokens[:maxParsedFeatures]
	}
	items := make([]FeatureItem, 0, len(tokens))
	for i, token := range tokens {
		items = append(items, FeatureItem{
			Name:        token,
			Description: token,
			Priority:    priorityForRank(i),
		})
	}
	return items
}

func priorityForRank(rank int) Priority {
	switch {
	case rank < 2:
		return PriorityP1
	case rank < 4:
		return PriorityP2
	default:
		return PriorityP3
	}
}

func splitFeatureTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '\n', '\r', ',', '·', '•':
			return true
		}
		return false
	})
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.TrimSpace(field)
		// Leading hyphens are list bullets, not content.
		token = strings.TrimSpace(strings.TrimLeft(token, "-"))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
