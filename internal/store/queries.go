// File path: internal/store/queries.go
package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SaveLead inserts a new lead row.
func (s *Store) SaveLead(ctx context.Context, lead Lead) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store not initialised")
	}
	if strings.TrimSpace(lead.ID) == "" {
		return fmt.Errorf("lead id required")
	}
	now := time.Now().UTC()
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = now
	if lead.Status == "" {
		lead.Status = "new"
	}
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO leads
                (id, name, email, phone, company, message, source, status, created_at, updated_at)
                VALUES (:id, :name, :email, :phone, :company, :message, :source, :status, :created_at, :updated_at)`, lead)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// UpdateLeadStatus moves a lead through the pipeline (new, qualified, contacted...).
func (s *Store) UpdateLeadStatus(ctx context.Context, id, status string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store not initialised")
	}
	res, err := s.db.ExecContext(ctx, `UPDATE leads SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("lead %s not found", id)
	}
	return nil
}

// ListLeads returns leads newest first, capped by limit.
func (s *Store) ListLeads(ctx context.Context, limit int) ([]Lead, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store not initialised")
	}
	if limit <= 0 {
		limit = 50
	}
	leads := []Lead{}
	if err := s.db.SelectContext(ctx, &leads, `SELECT * FROM leads ORDER BY created_at DESC LIMIT ?`, limit); err != nil {
		return nil, fmt.Errorf("select leads: %w", err)
	}
	return leads, nil
}

// SaveConsultation inserts a consultation request.
func (s *Store) SaveConsultation(ctx context.Context, c Consultation) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store not initialised")
	}
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("consultation id required")
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO consultations
                (id, lead_id, name, email, phone, preferred_at, message, created_at)
                VALUES (:id, :lead_id, :name, :email, :phone, :preferred_at, :message, :created_at)`, c)
	if err != nil {
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}

// UpsertSession writes an interview snapshot, replacing any previous row for
// the same session id.
func (s *Store) UpsertSession(ctx context.Context, row SessionRow) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store not initialised")
	}
	if strings.TrimSpace(row.ID) == "" {
		return fmt.Errorf("session id required")
	}
	now := time.Now().UTC()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO rfp_sessions
                (id, topic_index, completed, answers_json, document, created_at, updated_at)
                VALUES (:id, :topic_index, :completed, :answers_json, :document, :created_at, :updated_at)
                ON CONFLICT(id) DO UPDATE SET
                        topic_index = excluded.topic_index,
                        completed = excluded.completed,
                        answers_json = excluded.answers_json,
                        document = excluded.document,
                        updated_at = excluded.updated_at`, row)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// SessionByID loads a single session snapshot.
func (s *Store) SessionByID(ctx context.Context, id string) (*SessionRow, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store not initialised")
	}
	var row SessionRow
	if err := s.db.GetContext(ctx, &row, `SELECT * FROM rfp_sessions WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// AttachDocument stores the generated document alongside its session.
func (s *Store) AttachDocument(ctx context.Context, sessionID, document string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store not initialised")
	}
	_, err := s.db.ExecContext(ctx, `UPDATE rfp_sessions SET document = ?, updated_at = ? WHERE id = ?`,
		document, time.Now().UTC(), sessionID)
	if err != nil {
		return fmt.Errorf("attach document: %w", err)
	}
	return nil
}
