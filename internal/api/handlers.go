package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/MEMAtest/stress-engine/internal/config"
	"github.com/MEMAtest/stress-engine/internal/domain"
)

// StressTestRequest is the POST /stress-tests body: a baseline scenario and
// an optional catalog subset. An empty ScenarioIDs runs the whole catalog.
type StressTestRequest struct {
	Baseline    domain.ClientScenario `json:"baseline"`
	ScenarioIDs []string              `json:"scenarioIds,omitempty"`
}

// StressTestResponse wraps the ordered result list. Requested counts fewer
// than returned results mean some scenarios could not be evaluated.
type StressTestResponse struct {
	Results   []domain.StressTestResult `json:"results"`
	Requested int                       `json:"requested"`
	Evaluated int                       `json:"evaluated"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	cat := s.runner.Catalog()
	writeJSON(w, http.StatusOK, map[string]any{
		"scenarios":  cat.List(),
		"byCategory": cat.ByCategory(),
	})
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sc, ok := s.runner.Catalog().Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown scenario: " + id})
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleRunStressTests(w http.ResponseWriter, r *http.Request) {
	var req StressTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	parser := config.NewInputParser()
	if err := parser.ValidateBaseline(&req.Baseline); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	requested := len(req.ScenarioIDs)
	if requested == 0 {
		requested = s.runner.Catalog().Len()
	}

	results := s.runner.Run(r.Context(), &req.Baseline, req.ScenarioIDs)

	writeJSON(w, http.StatusOK, StressTestResponse{
		Results:   results,
		Requested: requested,
		Evaluated: len(results),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
