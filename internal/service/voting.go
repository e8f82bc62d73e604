package service

import (
	"context"
	"fmt"
	"time"

	"doggyrank/internal/logger"
	"doggyrank/internal/metrics"
	"doggyrank/internal/models"
	"doggyrank/internal/repository"
)

// Score deltas per vote direction.
const (
	VoteUpDelta   = 5
	VoteDownDelta = -3
)

const (
	directionUp   = "up"
	directionDown = "down"
)

type VotingService struct {
	registry  DogRegistry
	ledger    PointsLedger
	eventRepo repository.VoteEventRepo
	log       *logger.Logger
}

func NewVotingService(registry DogRegistry, ledger PointsLedger, eventRepo repository.VoteEventRepo, log *logger.Logger) *VotingService {
	return &VotingService{registry: registry, ledger: ledger, eventRepo: eventRepo, log: log}
}

func (s *VotingService) VoteUp(ctx context.Context, userID int64, breed string) (models.Points, error) {
	return s.vote(ctx, userID, breed, directionUp, VoteUpDelta)
}

func (s *VotingService) VoteDown(ctx context.Context, userID int64, breed string) (models.Points, error) {
	return s.vote(ctx, userID, breed, directionDown, VoteDownDelta)
}

// vote runs resolve dog -> resolve points -> apply delta. Nothing is rolled
// back: a dog created before a later failure stays.
func (s *VotingService) vote(ctx context.Context, userID int64, breed, direction string, delta int) (models.Points, error) {
	if userID <= 0 {
		return models.Points{}, fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	start := time.Now()

	dogID, err := s.registry.ResolveDog(ctx, breed)
	if err != nil {
		metrics.VoteErrorsTotal.WithLabelValues("resolve_dog").Inc()
		return models.Points{}, fmt.Errorf("resolve dog %q: %w", breed, err)
	}

	rec, err := s.ledger.ResolvePoints(ctx, userID, dogID)
	if err != nil {
		metrics.VoteErrorsTotal.WithLabelValues("resolve_points").Inc()
		return models.Points{}, fmt.Errorf("resolve points: %w", err)
	}

	final, err := s.ledger.ApplyDelta(ctx, rec, delta)
	if err != nil {
		metrics.VoteErrorsTotal.WithLabelValues("apply_delta").Inc()
		return models.Points{}, fmt.Errorf("apply delta %d: %w", delta, err)
	}

	metrics.VotesTotal.WithLabelValues(direction).Inc()
	metrics.VoteDuration.WithLabelValues(direction).Observe(time.Since(start).Seconds())

	s.record(ctx, final, NormalizeBreed(breed), delta)
	return final, nil
}

// record appends the vote to the log. Failures are logged, never returned:
// the score is already persisted.
func (s *VotingService) record(ctx context.Context, p models.Points, breed string, delta int) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.Append(ctx, models.VoteEvent{
		UserID: p.UserID,
		DogID:  p.DogID,
		Breed:  breed,
		Delta:  delta,
		Points: p.Points,
	})
	if err != nil && s.log != nil {
		s.log.Errorw("vote_event_append_failed", "err", err, "user_id", p.UserID, "dog_id", p.DogID)
	}
}
