// File path: internal/store/types.go
package store

import "time"

// Lead is a captured contact plus its interview readiness status.
type Lead struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Company   string    `db:"company"`
	Message   string    `db:"message"`
	Source    string    `db:"source"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Consultation is a scheduled-call request, optionally linked to a lead.
type Consultation struct {
	ID          string    `db:"id"`
	LeadID      string    `db:"lead_id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	PreferredAt string    `db:"preferred_at"`
	Message     string    `db:"message"`
	CreatedAt   time.Time `db:"created_at"`
}

// SessionRow is a snapshot of one interview session. Answers are stored as a
// JSON blob; the canonical state lives with the caller, these rows exist for
// recovery and operator visibility only.
type SessionRow struct {
	ID          string    `db:"id"`
	TopicIndex  int       `db:"topic_index"`
	Completed   bool      `db:"completed"`
	AnswersJSON string    `db:"answers_json"`
	Document    string    `db:"document"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
