// File path: internal/api/chat_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rfplab/rfpgen/internal/common"
	"github.com/rfplab/rfpgen/internal/rfp"
	"github.com/rfplab/rfpgen/internal/store"
)

// handleChat runs one interview turn. The deterministic state machine always
// decides the answer update and topic advance; the model, when reachable,
// may only replace the feature list and the reply text.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx := r.Context()
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: chat decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	userText := lastUserMessage(req.Messages)
	if userText == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("user message required"))
		return
	}
	if req.TopicIndex < rfp.FirstTopicIndex {
		req.TopicIndex = rfp.FirstTopicIndex
	}
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	logger.Info("api: chat turn", "session", sessionID, "topic_index", req.TopicIndex, "message_length", len(userText))

	turn := rfp.Advance(req.TopicIndex, userText, req.Answers)
	answers := rfp.Apply(req.Answers, turn.Update)

	// Deterministic output stands; enrichment may overwrite the feature list
	// and the reply text only.
	featuresGenerated := false
	if turn.FeatureSeed && s.enricher != nil {
		if items, ok := s.enricher.SuggestFeatures(ctx, answers.Overview); ok {
			turn.Update.Features = items
			answers = rfp.Apply(answers, turn.Update)
			featuresGenerated = true
		}
	}
	reply := composeDeterministicReply(turn)
	if !turn.Completed && turn.NextIndex != req.TopicIndex && s.enricher != nil {
		current, okCurrent := rfp.TopicAt(req.TopicIndex)
		next, okNext := rfp.TopicAt(turn.NextIndex)
		if okCurrent && okNext {
			if enriched, ok := s.enricher.ComposeReply(ctx, req.Messages, current, next, featuresGenerated); ok {
				reply = enriched.Analysis + "\n\n" + enriched.Question
			}
		}
	}

	s.snapshotSession(sessionID, turn, answers)

	providerName := "none"
	if s.provider != nil {
		providerName = s.provider.Name()
	}
	writeJSON(w, http.StatusOK, chatResponse{
		SessionID:      sessionID,
		Reply:          reply,
		AnswerUpdate:   turn.Update,
		Answers:        answers,
		NextTopicIndex: turn.NextIndex,
		Completed:      turn.Completed,
		Provider:       providerName,
	})
}

func lastUserMessage(messages []rfp.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return strings.TrimSpace(messages[i].Content)
		}
	}
	return ""
}

func composeDeterministicReply(turn rfp.Turn) string {
	if turn.Question == "" {
		return turn.Ack
	}
	return turn.Ack + "\n\n" + turn.Question
}

// snapshotSession queues a fire-and-forget session snapshot; a marshal
// failure only costs the snapshot.
func (s *Server) snapshotSession(sessionID string, turn rfp.Turn, answers rfp.AnswerRecord) {
	if s.saver == nil {
		return
	}
	payload, err := json.Marshal(answers)
	if err != nil {
		common.Logger().Warn("api: session snapshot marshal failed", "error", err)
		return
	}
	s.saver.SaveSession(store.SessionRow{
		ID:          sessionID,
		TopicIndex:  turn.NextIndex,
		Completed:   turn.Completed,
		AnswersJSON: string(payload),
	})
}
