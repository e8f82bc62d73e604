package service

import (
	"context"
	"fmt"
	"time"

	"doggyrank/internal/models"
	"doggyrank/internal/repository"
)

const (
	defaultFeedLimit = 100
	maxFeedLimit     = 500
)

type VoteLogService struct {
	eventRepo repository.VoteEventRepo
}

func NewVoteLogService(eventRepo repository.VoteEventRepo) *VoteLogService {
	return &VoteLogService{eventRepo: eventRepo}
}

var (
	errInvalidTimeRange = fmt.Errorf("%w: time range From must be <= To", ErrInvalidInput)
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	return from, to, NormalizeBreed(f.Breed), nil
}

func (s *VoteLogService) List(ctx context.Context, f LogFilter) ([]models.VoteEvent, error) {
	from, to, breed, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, from, to, breed)
}

// ListAfter returns events newer than seq, clamping limit to a sane page size.
func (s *VoteLogService) ListAfter(ctx context.Context, seq int64, limit int) ([]models.VoteEvent, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	return s.eventRepo.ListAfter(ctx, seq, limit)
}
