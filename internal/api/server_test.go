// File path: internal/api/server_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rfplab/rfpgen/internal/enrich"
	"github.com/rfplab/rfpgen/internal/llm"
	"github.com/rfplab/rfpgen/internal/llm/providers"
	"github.com/rfplab/rfpgen/internal/notify"
	"github.com/rfplab/rfpgen/internal/rfp"
	"github.com/rfplab/rfpgen/internal/store"
)

type failingProvider struct{}

func (failingProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	return "", errors.New("model unreachable")
}

func (failingProvider) Name() string { return "failing" }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerWith(t, failingProvider{})
}

func newTestServerWith(t *testing.T, provider llm.Provider) *Server {
	t.Helper()
	st, err := store.Open(store.Config{Path: filepath.Join(t.TempDir(), "api.db")})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	saver := store.NewSaver(st)
	t.Cleanup(saver.Close)
	srv, err := NewServer(provider, enrich.New(provider, 0), st, saver, notify.New(""))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func postJSON(t *testing.T, srv *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestChatTurnAdvancesDespiteModelOutage(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv, "/v1/chat", chatRequest{
		Messages:   []rfp.Message{{Role: "user", Content: "중고 거래 플랫폼을 만들고 싶어요"}},
		TopicIndex: 1,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.NextTopicIndex != 2 {
		t.Errorf("next topic index %d, want 2", resp.NextTopicIndex)
	}
	if resp.Completed {
		t.Error("first turn should not complete")
	}
	if resp.AnswerUpdate == nil || resp.AnswerUpdate.Topic != rfp.TopicOverview {
		t.Errorf("unexpected update: %#v", resp.AnswerUpdate)
	}
	if resp.Answers.Overview == "" {
		t.Error("answers should carry the merged overview")
	}
	if resp.Reply == "" {
		t.Error("reply must be non-empty even when the model is down")
	}
	if resp.SessionID == "" {
		t.Error("a session id should be assigned")
	}
}

func TestChatWithLocalProviderStaysDeterministic(t *testing.T) {
	srv := newTestServerWith(t, providers.NewLocalProvider())
	rec := postJSON(t, srv, "/v1/chat", chatRequest{
		Messages:   []rfp.Message{{Role: "user", Content: "중고 거래 플랫폼을 만들고 싶어요"}},
		TopicIndex: 1,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	next, _ := rfp.TopicAt(2)
	if !strings.HasSuffix(resp.Reply, next.Question) {
		t.Errorf("reply must end with the registry question for topic 2, got %q", resp.Reply)
	}
	if strings.ContainsAny(resp.Reply, "{}") {
		t.Errorf("reply must carry no prompt or JSON residue, got %q", resp.Reply)
	}
	if resp.Provider != "local" {
		t.Errorf("provider %q, want local", resp.Provider)
	}
}

func TestChatFeatureFallbackKeepsParsedItems(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv, "/v1/chat", chatRequest{
		Messages:   []rfp.Message{{Role: "user", Content: "로그인, 결제, 채팅"}},
		TopicIndex: 3,
		Answers:    rfp.AnswerRecord{Overview: "중고 거래 플랫폼"},
	})
	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Answers.CoreFeatures) != 3 {
		t.Fatalf("expected deterministic features to survive, got %d", len(resp.Answers.CoreFeatures))
	}
	names := []string{"로그인", "결제", "채팅"}
	for i, item := range resp.Answers.CoreFeatures {
		if item.Name != names[i] {
			t.Errorf("feature %d: %q, want %q", i, item.Name, names[i])
		}
	}
}

func TestChatFinalizeSentinel(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv, "/v1/chat", chatRequest{
		Messages:   []rfp.Message{{Role: "user", Content: rfp.FinalizeSentinel}},
		TopicIndex: 2,
		Answers:    rfp.AnswerRecord{Overview: "개요만 있는 상태"},
	})
	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Completed {
		t.Error("finalize sentinel must complete the interview immediately")
	}
	if resp.Answers.Overview != "개요만 있는 상태" {
		t.Error("collected answers must be preserved on early exit")
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv, "/v1/chat", chatRequest{TopicIndex: 1})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestGenerateDocument(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv, "/v1/rfp/generate", generateRequest{
		Answers: rfp.AnswerRecord{
			Overview:     "중고 거래 플랫폼을 만들고 싶어요",
			TargetUsers:  "2030 직장인",
			CoreFeatures: rfp.ParseFeatures("로그인, 결제, 채팅"),
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Document, "## 1. 경영진 요약") {
		t.Error("document missing executive summary")
	}
	if resp.GeneratedAt.IsZero() {
		t.Error("generated_at missing")
	}
	if !resp.Ready || resp.Coverage != 3 {
		t.Errorf("ready=%v coverage=%d, want ready with coverage 3", resp.Ready, resp.Coverage)
	}
}

func TestGenerateEmptyRecordStillSucceeds(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv, "/v1/rfp/generate", generateRequest{})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Ready {
		t.Error("empty record must not be ready")
	}
	if resp.Document == "" {
		t.Error("empty record must still render a document")
	}
}

func TestLeadValidationAndCapture(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/v1/leads", leadRequest{Name: "김민수", Email: "not-an-email", Message: "문의합니다"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed email: status %d, want 400", rec.Code)
	}

	rec = postJSON(t, srv, "/v1/leads", leadRequest{Name: "김민수", Email: "minsu@example.com", Message: ""})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty message: status %d, want 400", rec.Code)
	}

	answers := rfp.AnswerRecord{
		Overview:     "중고 거래 플랫폼",
		TargetUsers:  "2030",
		CoreFeatures: rfp.ParseFeatures("로그인, 결제"),
	}
	rec = postJSON(t, srv, "/v1/leads", leadRequest{
		Name: "김민수", Email: "minsu@example.com", Message: "견적 문의드립니다", Source: "chat", Answers: &answers,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp leadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "qualified" {
		t.Errorf("status %q, want qualified", resp.Status)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/v1/leads", nil)
	listRec := httptest.NewRecorder()
	srv.ServeHTTP(listRec, listReq)
	if listRec.Code != http.StatusOK {
		t.Fatalf("list status %d", listRec.Code)
	}
	if !strings.Contains(listRec.Body.String(), "minsu@example.com") {
		t.Error("captured lead missing from listing")
	}
}

func TestCreateConsultation(t *testing.T) {
	srv := newTestServer(t)
	rec := postJSON(t, srv, "/v1/consultations", consultationRequest{
		Name: "박지훈", Email: "jh@example.com", PreferredAt: "평일 오후", Message: "상담 요청",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTopicsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/topics", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Topics []rfp.Topic `json:"topics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Topics) != 7 {
		t.Errorf("expected 7 topics, got %d", len(resp.Topics))
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("unexpected health response: %d %q", rec.Code, rec.Body.String())
	}
}
