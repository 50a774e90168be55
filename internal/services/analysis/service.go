package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomasvidela/solva/internal/common"
	"github.com/tomasvidela/solva/internal/interfaces"
	"github.com/tomasvidela/solva/internal/models"
)

// Service wraps the pure engine with logging, config defaults, and the
// persistence collaborator. The engine functions themselves stay free of
// all three.
type Service struct {
	storage  interfaces.AnalysisStorage
	logger   *common.Logger
	defaults common.AnalysisConfig
}

// NewService creates the analysis service. storage may be nil for a
// compute-only (stateless) service.
func NewService(storage interfaces.AnalysisStorage, defaults common.AnalysisConfig, logger *common.Logger) *Service {
	return &Service{
		storage:  storage,
		logger:   logger,
		defaults: defaults,
	}
}

// applyDefaults fills settings values the request omitted (zero values)
// from the configured analysis defaults.
func (s *Service) applyDefaults(settings *models.AnalysisSettings) {
	if settings.Weights == nil {
		settings.Weights = make(map[models.CategoryKey]float64, len(s.defaults.DefaultWeights))
		for k, v := range s.defaults.DefaultWeights {
			settings.Weights[models.CategoryKey(k)] = v
		}
	}
	if settings.Simulation.REMPercent == 0 && s.defaults.DefaultREMPercent != 0 {
		settings.Simulation.REMPercent = models.Amount(s.defaults.DefaultREMPercent)
	}
	if settings.Simulation.CACPercent == 0 && s.defaults.DefaultCACPercent != 0 {
		settings.Simulation.CACPercent = models.Amount(s.defaults.DefaultCACPercent)
	}
}

// Compute runs the full engine over one snapshot and merges the coverage
// percentage into the result.
func (s *Service) Compute(req interfaces.ComputeRequest) models.CalculationResult {
	if req.ExchangeRate <= 0 {
		s.logger.Warn().
			Float64("exchange_rate", req.ExchangeRate).
			Msg("Missing or invalid exchange rate, computing with rate 1")
	}

	s.applyDefaults(&req.Settings)

	result := Compute(req.Client, req.FinancialData, req.Settings, req.ExchangeRate)
	result.PercentPaid, result.PercentPaidEstimated = ComputeCoverage(req.Plan, req.TargetDate, req.ExchangeRate)

	s.logger.Debug().
		Str("client", req.Client.ID).
		Float64("total_capacity_ars", result.TotalCapacityARS).
		Float64("coverage_ratio", result.CoverageRatio).
		Str("classification", string(result.Classification)).
		Msg("Analysis computed")

	return result
}

// Coverage computes only the paid-by-target-date percentage.
func (s *Service) Coverage(plan models.FinancingPlan, targetDate string, exchangeRate float64) (float64, bool) {
	return ComputeCoverage(plan, targetDate, exchangeRate)
}

// SaveAnalysis persists the declared snapshot. Derived results are never
// written; they are recomputed on read.
func (s *Service) SaveAnalysis(ctx context.Context, a *models.Analysis) error {
	if s.storage == nil {
		return fmt.Errorf("analysis persistence is not configured")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if err := s.storage.SaveAnalysis(ctx, a); err != nil {
		return fmt.Errorf("failed to save analysis '%s': %w", a.ID, err)
	}
	s.logger.Info().Str("id", a.ID).Str("client", a.Client.Name).Msg("Analysis saved")
	return nil
}

// GetAnalysis retrieves a persisted analysis by id.
func (s *Service) GetAnalysis(ctx context.Context, id string) (*models.Analysis, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("analysis persistence is not configured")
	}
	return s.storage.GetAnalysis(ctx, id)
}

// ListAnalyses returns all persisted analyses.
func (s *Service) ListAnalyses(ctx context.Context) ([]*models.Analysis, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("analysis persistence is not configured")
	}
	return s.storage.ListAnalyses(ctx)
}

// DeleteAnalysis removes a persisted analysis.
func (s *Service) DeleteAnalysis(ctx context.Context, id string) error {
	if s.storage == nil {
		return fmt.Errorf("analysis persistence is not configured")
	}
	if err := s.storage.DeleteAnalysis(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("Analysis deleted")
	return nil
}

// GetResult loads a persisted analysis and recomputes its result.
func (s *Service) GetResult(ctx context.Context, id string) (*models.CalculationResult, error) {
	a, err := s.GetAnalysis(ctx, id)
	if err != nil {
		return nil, err
	}
	result := s.Compute(interfaces.ComputeRequest{
		Client:        a.Client,
		FinancialData: a.FinancialData,
		Settings:      a.Settings,
		Plan:          a.Plan,
		ExchangeRate:  a.ExchangeRate,
		TargetDate:    a.TargetDate,
	})
	return &result, nil
}
