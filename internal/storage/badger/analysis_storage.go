package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/tomasvidela/solva/internal/common"
	"github.com/tomasvidela/solva/internal/models"
)

// AnalysisStorage persists analysis snapshots in BadgerHold. Only the
// declared inputs are stored; calculation results are recomputed on read.
type AnalysisStorage struct {
	store  *Store
	logger *common.Logger
}

// NewAnalysisStorage creates an AnalysisStorage backed by BadgerHold.
func NewAnalysisStorage(store *Store, logger *common.Logger) *AnalysisStorage {
	return &AnalysisStorage{store: store, logger: logger}
}

// SaveAnalysis upserts the snapshot, preserving CreatedAt and bumping the
// version when the record already exists.
func (s *AnalysisStorage) SaveAnalysis(_ context.Context, a *models.Analysis) error {
	if a.ID == "" {
		return fmt.Errorf("analysis id is required")
	}

	var existing models.Analysis
	err := s.store.db.Get(a.ID, &existing)
	if err == nil {
		a.CreatedAt = existing.CreatedAt
		a.Version = existing.Version + 1
	} else {
		a.Version = 1
		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now()
		}
	}

	a.UpdatedAt = time.Now()

	if err := s.store.db.Upsert(a.ID, a); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	s.logger.Debug().Str("id", a.ID).Int("version", a.Version).Msg("Analysis saved")
	return nil
}

func (s *AnalysisStorage) GetAnalysis(_ context.Context, id string) (*models.Analysis, error) {
	var a models.Analysis
	err := s.store.db.Get(id, &a)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("analysis '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get analysis '%s': %w", id, err)
	}
	return &a, nil
}

func (s *AnalysisStorage) ListAnalyses(_ context.Context) ([]*models.Analysis, error) {
	var analyses []models.Analysis
	if err := s.store.db.Find(&analyses, nil); err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	out := make([]*models.Analysis, len(analyses))
	for i := range analyses {
		out[i] = &analyses[i]
	}
	return out, nil
}

func (s *AnalysisStorage) DeleteAnalysis(_ context.Context, id string) error {
	err := s.store.db.Delete(id, models.Analysis{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete analysis '%s': %w", id, err)
	}
	s.logger.Debug().Str("id", id).Msg("Analysis deleted")
	return nil
}

// Close closes the underlying store.
func (s *AnalysisStorage) Close() error {
	return s.store.Close()
}
