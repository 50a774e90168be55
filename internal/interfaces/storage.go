package interfaces

import (
	"context"

	"github.com/tomasvidela/solva/internal/models"
)

// AnalysisStorage persists analysis snapshots. Implementations must store
// FinancialData and AnalysisSettings verbatim; derived results are never
// written.
type AnalysisStorage interface {
	SaveAnalysis(ctx context.Context, a *models.Analysis) error
	GetAnalysis(ctx context.Context, id string) (*models.Analysis, error)
	ListAnalyses(ctx context.Context) ([]*models.Analysis, error)
	DeleteAnalysis(ctx context.Context, id string) error
	Close() error
}
