// File path: internal/store/store_test.go
package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := Config{Path: filepath.Join(t.TempDir(), "test.db")}
	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndListLeads(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	lead := Lead{ID: "lead-1", Name: "김민수", Email: "minsu@example.com", Source: "chat", Status: "qualified"}
	if err := s.SaveLead(ctx, lead); err != nil {
		t.Fatalf("save lead: %v", err)
	}
	leads, err := s.ListLeads(ctx, 10)
	if err != nil {
		t.Fatalf("list leads: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(leads))
	}
	if leads[0].Email != "minsu@example.com" || leads[0].Status != "qualified" {
		t.Errorf("unexpected lead row: %#v", leads[0])
	}
}

func TestUpdateLeadStatus(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.SaveLead(ctx, Lead{ID: "lead-2", Name: "이영희", Email: "yh@example.com"}); err != nil {
		t.Fatalf("save lead: %v", err)
	}
	if err := s.UpdateLeadStatus(ctx, "lead-2", "contacted"); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if err := s.UpdateLeadStatus(ctx, "missing", "contacted"); err == nil {
		t.Error("updating a missing lead should fail")
	}
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	row := SessionRow{ID: "sess-1", TopicIndex: 3, AnswersJSON: `{"overview":"개요"}`}
	if err := s.UpsertSession(ctx, row); err != nil {
		t.Fatalf("upsert session: %v", err)
	}
	row.TopicIndex = 4
	row.Completed = true
	if err := s.UpsertSession(ctx, row); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	loaded, err := s.SessionByID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if loaded.TopicIndex != 4 || !loaded.Completed {
		t.Errorf("snapshot not replaced: %#v", loaded)
	}
	if err := s.AttachDocument(ctx, "sess-1", "# RFP"); err != nil {
		t.Fatalf("attach document: %v", err)
	}
	loaded, err = s.SessionByID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("reload session: %v", err)
	}
	if loaded.Document != "# RFP" {
		t.Errorf("document not stored: %q", loaded.Document)
	}
}

func TestSaverAppliesQueuedWrites(t *testing.T) {
	s := openTestStore(t)
	saver := NewSaver(s)
	saver.SaveSession(SessionRow{ID: "sess-async", TopicIndex: 2, AnswersJSON: "{}"})
	saver.Close()

	deadline := time.Now().Add(2 * time.Second)
	for {
		row, err := s.SessionByID(context.Background(), "sess-async")
		if err == nil && row.TopicIndex == 2 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("queued session write never landed: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSaveConsultation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	c := Consultation{ID: "con-1", Name: "박지훈", Email: "jh@example.com", PreferredAt: "평일 오후"}
	if err := s.SaveConsultation(ctx, c); err != nil {
		t.Fatalf("save consultation: %v", err)
	}
	if err := s.SaveConsultation(ctx, Consultation{Name: "없는 아이디"}); err == nil {
		t.Error("missing id should be rejected")
	}
}
