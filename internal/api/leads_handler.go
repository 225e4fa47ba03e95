// File path: internal/api/leads_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rfplab/rfpgen/internal/common"
	"github.com/rfplab/rfpgen/internal/notify"
	"github.com/rfplab/rfpgen/internal/rfp"
	"github.com/rfplab/rfpgen/internal/store"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const maxMessageLength = 2000

// handleCreateLead captures a contact. The lead row is the one write the
// caller waits on; the webhook notification is detached and best-effort.
func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req leadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: lead decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateContact(req.Name, req.Email, req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	status := "new"
	if req.Answers != nil && rfp.Ready(*req.Answers) {
		status = "qualified"
	}
	lead := store.Lead{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Company: strings.TrimSpace(req.Company),
		Message: strings.TrimSpace(req.Message),
		Source:  strings.TrimSpace(req.Source),
		Status:  status,
	}
	if err := s.store.SaveLead(r.Context(), lead); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: lead captured", "id", lead.ID, "status", status, "source", lead.Source)
	s.notifier.Send(notify.Event{
		Kind:    "lead",
		Title:   "새 리드 접수",
		Message: fmt.Sprintf("%s (%s) — %s", lead.Name, lead.Email, status),
	})
	writeJSON(w, http.StatusCreated, leadResponse{ID: lead.ID, Status: status})
}

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}
	leads, err := s.store.ListLeads(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leads": leads})
}

func (s *Server) handleCreateConsultation(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req consultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: consultation decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateContact(req.Name, req.Email, req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	consultation := store.Consultation{
		ID:          uuid.NewString(),
		LeadID:      strings.TrimSpace(req.LeadID),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		PreferredAt: strings.TrimSpace(req.PreferredAt),
		Message:     strings.TrimSpace(req.Message),
	}
	if err := s.store.SaveConsultation(r.Context(), consultation); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: consultation requested", "id", consultation.ID)
	s.notifier.Send(notify.Event{
		Kind:    "consultation",
		Title:   "새 상담 요청",
		Message: fmt.Sprintf("%s (%s) — %s", consultation.Name, consultation.Email, consultation.PreferredAt),
	})
	writeJSON(w, http.StatusCreated, map[string]string{"id": consultation.ID})
}

func validateContact(name, email, message string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("invalid email address")
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message required")
	}
	if len([]rune(message)) > maxMessageLength {
		return fmt.Errorf("message too long (max %d characters)", maxMessageLength)
	}
	return nil
}
