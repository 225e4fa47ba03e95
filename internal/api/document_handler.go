// File path: internal/api/document_handler.go
package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rfplab/rfpgen/internal/common"
	"github.com/rfplab/rfpgen/internal/docgen"
	"github.com/rfplab/rfpgen/internal/rfp"
)

// handleGenerate renders the RFP document from an answer snapshot. The
// renderer is deterministic and model-free, so this endpoint works under
// total external-dependency outage.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: generate decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	doc := docgen.Generate(req.Answers, time.Now())
	logger.Info("api: document generated",
		"session", req.SessionID,
		"coverage", rfp.Coverage(req.Answers),
		"bytes", len(doc.Content),
	)
	if s.saver != nil && strings.TrimSpace(req.SessionID) != "" {
		s.saver.SaveDocument(strings.TrimSpace(req.SessionID), doc.Content)
	}
	writeJSON(w, http.StatusOK, generateResponse{
		Document:    doc.Content,
		GeneratedAt: doc.GeneratedAt,
		Coverage:    rfp.Coverage(req.Answers),
		Ready:       rfp.Ready(req.Answers),
	})
}
