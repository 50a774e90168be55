package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tomasvidela/solva/internal/interfaces"
	"github.com/tomasvidela/solva/internal/models"
)

// --- Stateless engine handlers ---

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req interfaces.ComputeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result := s.app.AnalysisService.Compute(req)
	WriteJSON(w, http.StatusOK, result)
}

func (s *Server) handleCoverage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Plan         models.FinancingPlan `json:"plan"`
		TargetDate   string               `json:"target_date"`
		ExchangeRate float64              `json:"exchange_rate"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	percent, estimated := s.app.AnalysisService.Coverage(req.Plan, req.TargetDate, req.ExchangeRate)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"percent_paid": percent,
		"estimated":    estimated,
	})
}

// --- Persisted analysis handlers ---

// handleAnalyses serves /api/analyses (list and create).
func (s *Server) handleAnalyses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		analyses, err := s.app.AnalysisService.ListAnalyses(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error listing analyses: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"analyses": analyses})

	case http.MethodPost:
		var a models.Analysis
		if !DecodeJSON(w, r, &a) {
			return
		}
		a.ID = "" // ids are always server-assigned on create
		if err := s.app.AnalysisService.SaveAnalysis(r.Context(), &a); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error saving analysis: %v", err))
			return
		}
		WriteJSON(w, http.StatusCreated, a)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// routeAnalyses dispatches /api/analyses/{id} and /api/analyses/{id}/result.
func (s *Server) routeAnalyses(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/analyses/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		WriteError(w, http.StatusBadRequest, "Analysis id is required")
		return
	}
	id := parts[0]

	if len(parts) == 2 && parts[1] == "result" {
		s.handleAnalysisResult(w, r, id)
		return
	}
	if len(parts) > 1 {
		WriteError(w, http.StatusNotFound, "Unknown analysis resource")
		return
	}

	switch r.Method {
	case http.MethodGet:
		a, err := s.app.AnalysisService.GetAnalysis(r.Context(), id)
		if err != nil {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("Analysis not found: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, a)

	case http.MethodPut:
		var a models.Analysis
		if !DecodeJSON(w, r, &a) {
			return
		}
		a.ID = id
		if err := s.app.AnalysisService.SaveAnalysis(r.Context(), &a); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error saving analysis: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, a)

	case http.MethodDelete:
		if err := s.app.AnalysisService.DeleteAnalysis(r.Context(), id); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error deleting analysis: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"deleted": id})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// handleAnalysisResult recomputes the result for a persisted analysis.
// Results are never stored, so this is always a fresh computation.
func (s *Server) handleAnalysisResult(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	result, err := s.app.AnalysisService.GetResult(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Analysis not found: %v", err))
		return
	}
	WriteJSON(w, http.StatusOK, result)
}
