package service

import (
	"context"
	"fmt"
	"strings"

	"doggyrank/internal/metrics"
	"doggyrank/internal/repository"
)

type DogRegistryService struct {
	dogRepo repository.DogRepo
}

func NewDogRegistryService(dogRepo repository.DogRepo) *DogRegistryService {
	return &DogRegistryService{dogRepo: dogRepo}
}

// NormalizeBreed lower-cases and trims a breed name so that "Maltese" and
// "maltese" resolve to the same dog.
func NormalizeBreed(breed string) string {
	return strings.ToLower(strings.TrimSpace(breed))
}

// ResolveDog returns the id of the dog for breed, creating the dog on first use.
func (s *DogRegistryService) ResolveDog(ctx context.Context, breed string) (int64, error) {
	normalized := NormalizeBreed(breed)
	if normalized == "" {
		return 0, fmt.Errorf("%w: breed is empty", ErrInvalidInput)
	}
	dog, created, err := s.dogRepo.FindOrCreate(ctx, normalized)
	if err != nil {
		return 0, err
	}
	if created {
		metrics.DogsCreatedTotal.Inc()
	}
	return dog.ID, nil
}
