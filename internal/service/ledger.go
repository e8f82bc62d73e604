package service

import (
	"context"

	"doggyrank/internal/metrics"
	"doggyrank/internal/models"
	"doggyrank/internal/repository"
)

type LedgerService struct {
	pointsRepo repository.PointsRepo
}

func NewLedgerService(pointsRepo repository.PointsRepo) *LedgerService {
	return &LedgerService{pointsRepo: pointsRepo}
}

// ResolvePoints returns the unique row for (userID, dogID), creating it with
// zero points if absent. userID is not checked against the users table.
func (s *LedgerService) ResolvePoints(ctx context.Context, userID, dogID int64) (models.Points, error) {
	p, created, err := s.pointsRepo.FindOrCreate(ctx, userID, dogID)
	if err != nil {
		return models.Points{}, err
	}
	if created {
		metrics.PointsCreatedTotal.Inc()
	}
	return p, nil
}

// ApplyDelta adds delta to rec's stored score in a single statement and
// returns the persisted row. The current value in rec is not trusted, so a
// concurrent vote between ResolvePoints and ApplyDelta is not lost.
func (s *LedgerService) ApplyDelta(ctx context.Context, rec models.Points, delta int) (models.Points, error) {
	return s.pointsRepo.AddDelta(ctx, rec.ID, delta)
}
