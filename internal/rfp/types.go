// File path: internal/rfp/types.go
package rfp

import "strings"

// Priority ranks a requested feature. The parser assigns P1 to the first
// mentioned items on the assumption that users lead with what matters most.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// FeatureItem is a single requested feature. Name and Description are equal
// when the item came from the deterministic parser; the enrichment layer may
// replace the list with model-generated items carrying distinct descriptions.
type FeatureItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// AnswerRecord accumulates the answers collected across the seven interview
// topics. Fields start empty and are replaced whole-value on each topic
// visit; CoreFeatures is always replaced as a complete list.
type AnswerRecord struct {
	Overview               string        `json:"overview"`
	TargetUsers            string        `json:"target_users"`
	CoreFeatures           []FeatureItem `json:"core_features"`
	ReferenceServices      string        `json:"reference_services"`
	TechRequirements       string        `json:"tech_requirements"`
	BudgetTimeline         string        `json:"budget_timeline"`
	AdditionalRequirements string        `json:"additional_requirements"`
}

// Message is one conversation turn as exchanged with the API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the per-conversation state owned by the calling handler for the
// lifetime of the interview. It is passed in and returned on every turn; the
// core holds no state between requests.
type Session struct {
	Messages   []Message    `json:"messages"`
	TopicIndex int          `json:"topic_index"`
	Answers    AnswerRecord `json:"answers"`
	Completed  bool         `json:"completed"`
}

// Coverage reports how many of the seven topics carry an answer.
func Coverage(rec AnswerRecord) int {
	count := 0
	for _, topic := range Topics() {
		if topicAnswered(topic, rec) {
			count++
		}
	}
	return count
}

// Ready reports whether the record is complete enough to back a qualified
// lead: at least three topics covered and both mandatory topics present.
func Ready(rec AnswerRecord) bool {
	if strings.TrimSpace(rec.Overview) == "" || len(rec.CoreFeatures) == 0 {
		return false
	}
	return Coverage(rec) >= 3
}

func topicAnswered(topic Topic, rec AnswerRecord) bool {
	switch topic.ID {
	case TopicOverview:
		return strings.TrimSpace(rec.Overview) != ""
	case TopicTargetUsers:
		return strings.TrimSpace(rec.TargetUsers) != ""
	case TopicCoreFeatures:
		return len(rec.CoreFeatures) > 0
	case TopicReferenceServices:
		return strings.TrimSpace(rec.ReferenceServices) != ""
	case TopicTechRequirements:
		return strings.TrimSpace(rec.TechRequirements) != ""
	case TopicBudgetTimeline:
		return strings.TrimSpace(rec.BudgetTimeline) != ""
	case TopicAdditional:
		return strings.TrimSpace(rec.AdditionalRequirements) != ""
	}
	return false
}
