package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"opening-hours-normalizer/internal/normalize"
	errs "opening-hours-normalizer/pkg/errors"
)

// normalizeRequest is the body of POST /normalize. Languages are tried in
// order; empty means the configured defaults.
type normalizeRequest struct {
	Text      string   `json:"text"`
	Languages []string `json:"languages,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.normalizeErrors.Inc()
	status := http.StatusInternalServerError
	if errs.Is(err, errs.ErrValidation) {
		status = http.StatusBadRequest
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) normalizeHandler(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errs.NewValidation("server.normalize", "invalid JSON body", err))
		return
	}

	result, err := s.normalizeOne(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// normalizeBatchHandler normalizes several fragments in one call. Items fail
// individually: a bad fragment yields an error entry, not a failed batch.
func (s *Server) normalizeBatchHandler(w http.ResponseWriter, r *http.Request) {
	var reqs []normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		s.writeError(w, errs.NewValidation("server.normalizeBatch", "invalid JSON body", err))
		return
	}

	type batchItem struct {
		normalize.Result
		Error string `json:"error,omitempty"`
	}
	items := make([]batchItem, len(reqs))
	for i, req := range reqs {
		result, err := s.normalizeOne(req)
		if err != nil {
			s.normalizeErrors.Inc()
			items[i] = batchItem{Error: err.Error()}
			continue
		}
		items[i] = batchItem{Result: result}
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) normalizeOne(req normalizeRequest) (normalize.Result, error) {
	languages := req.Languages
	if len(languages) == 0 {
		languages = s.cfg.DefaultLanguages
	}
	result, err := s.service.Normalize(req.Text, languages)
	if err != nil {
		return normalize.Result{}, err
	}
	s.normalizeTotal.Inc()
	if !result.Matched {
		s.normalizeMissed.Inc()
	}
	return result, nil
}

func (s *Server) languagesHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"languages": s.vocabs.Tags()})
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
