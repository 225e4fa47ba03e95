// File path: internal/api/types.go
package api

import (
	"time"

	"github.com/rfplab/rfpgen/internal/rfp"
)

type chatRequest struct {
	SessionID  string           `json:"session_id"`
	Messages   []rfp.Message    `json:"messages"`
	TopicIndex int              `json:"topic_index"`
	Answers    rfp.AnswerRecord `json:"answers"`
}

type chatResponse struct {
	SessionID      string           `json:"session_id"`
	Reply          string           `json:"reply"`
	AnswerUpdate   *rfp.Update      `json:"answer_update,omitempty"`
	Answers        rfp.AnswerRecord `json:"answers"`
	NextTopicIndex int              `json:"next_topic_index"`
	Completed      bool             `json:"completed"`
	Provider       string           `json:"provider"`
}

type generateRequest struct {
	SessionID string           `json:"session_id"`
	Answers   rfp.AnswerRecord `json:"answers"`
}

type generateResponse struct {
	Document    string    `json:"document"`
	GeneratedAt time.Time `json:"generated_at"`
	Coverage    int       `json:"coverage"`
	Ready       bool      `json:"ready"`
}

type leadRequest struct {
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	Company string            `json:"company"`
	Message string            `json:"message"`
	Source  string            `json:"source"`
	Answers *rfp.AnswerRecord `json:"answers,omitempty"`
}

type leadResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type consultationRequest struct {
	LeadID      string `json:"lead_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PreferredAt string `json:"preferred_at"`
	Message     string `json:"message"`
}
