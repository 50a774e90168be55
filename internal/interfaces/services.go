// Package interfaces defines service contracts for Solva
package interfaces

import (
	"context"

	"github.com/tomasvidela/solva/internal/models"
)

// ComputeRequest is one fully-materialized snapshot for the engine.
type ComputeRequest struct {
	Client        models.Client           `json:"client"`
	FinancialData models.FinancialData    `json:"financial_data"`
	Settings      models.AnalysisSettings `json:"settings"`
	Plan          models.FinancingPlan    `json:"plan"`
	ExchangeRate  float64                 `json:"exchange_rate"` // ARS per USD
	TargetDate    string                  `json:"target_date,omitempty"`
}

// AnalysisService runs the solvency engine and manages persisted analyses.
type AnalysisService interface {
	// Compute runs the full engine over a snapshot. It is total: any input
	// yields a result, never an error.
	Compute(req ComputeRequest) models.CalculationResult

	// Coverage computes only the paid-by-target-date percentage.
	// estimated is true when the placeholder was used because no target
	// date was supplied.
	Coverage(plan models.FinancingPlan, targetDate string, exchangeRate float64) (percent float64, estimated bool)

	// SaveAnalysis persists the declared snapshot (never the result).
	SaveAnalysis(ctx context.Context, a *models.Analysis) error

	// GetAnalysis retrieves a persisted analysis by id.
	GetAnalysis(ctx context.Context, id string) (*models.Analysis, error)

	// ListAnalyses returns all persisted analyses.
	ListAnalyses(ctx context.Context) ([]*models.Analysis, error)

	// DeleteAnalysis removes a persisted analysis.
	DeleteAnalysis(ctx context.Context, id string) error

	// GetResult loads an analysis and recomputes its result.
	GetResult(ctx context.Context, id string) (*models.CalculationResult, error)
}
