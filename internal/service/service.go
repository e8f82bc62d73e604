package service

import (
	"context"

	"doggyrank"
	"doggyrank/internal/logger"
	"doggyrank/internal/models"
	"doggyrank/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) (int64, error)
	GenerateToken(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (int64, error)
}

// Users exposes profile reads/edits and a user's per-breed points.
type Users interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in UserUpdate) (*models.User, error)
	ListPoints(ctx context.Context, userID int64) ([]models.BreedPoints, error)
}

// DogRegistry maps a breed name (case-insensitive) to a unique dog id.
type DogRegistry interface {
	ResolveDog(ctx context.Context, breed string) (int64, error)
}

// PointsLedger maps a (user, dog) pair to a single integer score.
type PointsLedger interface {
	ResolvePoints(ctx context.Context, userID, dogID int64) (models.Points, error)
	ApplyDelta(ctx context.Context, rec models.Points, delta int) (models.Points, error)
}

// Voting orchestrates registry, ledger and score mutation for one vote.
type Voting interface {
	VoteUp(ctx context.Context, userID int64, breed string) (models.Points, error)
	VoteDown(ctx context.Context, userID int64, breed string) (models.Points, error)
}

// VoteLog exposes the append-only vote history.
type VoteLog interface {
	List(ctx context.Context, f LogFilter) ([]models.VoteEvent, error)
	ListAfter(ctx context.Context, seq int64, limit int) ([]models.VoteEvent, error)
}

// DogImages fetches random dog pictures from the external dog API.
type DogImages interface {
	RandomDog(ctx context.Context) (doggyrank.DogImage, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Users
	DogRegistry
	PointsLedger
	Voting
	VoteLog
	DogImages
}

// Options carries the settings services need from configuration.
type Options struct {
	Auth   AuthOptions
	DogAPI DogAPIOptions
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options, log *logger.Logger) *Service {
	registry := NewDogRegistryService(repos.Dogs)
	ledger := NewLedgerService(repos.Points)
	return &Service{
		Authorization: NewAuthService(repos.Users, opts.Auth),
		Users:         NewUserService(repos.Users, repos.Points),
		DogRegistry:   registry,
		PointsLedger:  ledger,
		Voting:        NewVotingService(registry, ledger, repos.VoteEvents, log),
		VoteLog:       NewVoteLogService(repos.VoteEvents),
		DogImages:     NewDogAPIClient(opts.DogAPI),
	}
}
