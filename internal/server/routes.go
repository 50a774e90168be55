package server

import (
	"net/http"

	"github.com/tomasvidela/solva/internal/common"
	"github.com/tomasvidela/solva/internal/services/analysis"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Stateless engine
	mux.HandleFunc("/api/compute", s.handleCompute)
	mux.HandleFunc("/api/coverage", s.handleCoverage)

	// Catalogs
	mux.HandleFunc("/api/catalog/monotributo", s.handleMonotributoCatalog)

	// Persisted analyses
	mux.HandleFunc("/api/analyses", s.handleAnalyses)
	mux.HandleFunc("/api/analyses/", s.routeAnalyses)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	cfg := s.app.Config
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":         cfg.Environment,
		"default_rem_percent": cfg.Analysis.DefaultREMPercent,
		"default_cac_percent": cfg.Analysis.DefaultCACPercent,
		"default_weights":     cfg.Analysis.DefaultWeights,
	})
}

// --- Catalog handlers ---

func (s *Server) handleMonotributoCatalog(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"scale": analysis.MonotributoScale,
	})
}
