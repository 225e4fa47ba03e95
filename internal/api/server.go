// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/rfplab/rfpgen/internal/common"
	"github.com/rfplab/rfpgen/internal/enrich"
	"github.com/rfplab/rfpgen/internal/llm"
	"github.com/rfplab/rfpgen/internal/notify"
	"github.com/rfplab/rfpgen/internal/rfp"
	"github.com/rfplab/rfpgen/internal/store"
)

type Server struct {
	router   chi.Router
	provider llm.Provider
	enricher *enrich.Enricher
	store    *store.Store
	saver    *store.Saver
	notifier *notify.Notifier
}

func NewServer(provider llm.Provider, enricher *enrich.Enricher, st *store.Store, saver *store.Saver, notifier *notify.Notifier) (*Server, error) {
	logger := common.Logger()
	if st == nil {
		return nil, fmt.Errorf("store required")
	}
	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: building server", "provider", providerName, "notifier", notifier.Enabled())
	srv := &Server{
		router:   chi.NewRouter(),
		provider: provider,
		enricher: enricher,
		store:    st,
		saver:    saver,
		notifier: notifier,
	}
	srv.routes()
	logger.Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/v1/chat", s.handleChat)
	s.router.Get("/v1/topics", s.handleTopics)
	s.router.Post("/v1/rfp/generate", s.handleGenerate)
	s.router.Post("/v1/leads", s.handleCreateLead)
	s.router.Get("/v1/leads", s.handleListLeads)
	s.router.Post("/v1/consultations", s.handleCreateConsultation)
	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"topics": rfp.Topics()})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"entries": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
