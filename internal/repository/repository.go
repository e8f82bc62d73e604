package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"doggyrank/internal/models"
)

// ErrDuplicate is returned when an insert or update violates a UNIQUE constraint.
var ErrDuplicate = errors.New("duplicate record")

type DogRepo interface {
	// FindOrCreate returns the dog with the given breed, inserting it first if
	// needed. created reports whether this call inserted the row.
	FindOrCreate(ctx context.Context, breed string) (dog models.Dog, created bool, err error)
}

type PointsRepo interface {
	FindOrCreate(ctx context.Context, userID, dogID int64) (p models.Points, created bool, err error)
	AddDelta(ctx context.Context, id int64, delta int) (models.Points, error)
	ListByUser(ctx context.Context, userID int64) ([]models.BreedPoints, error)
}

type UserRepo interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
}

type VoteEventRepo interface {
	Append(ctx context.Context, e models.VoteEvent) error
	List(ctx context.Context, from, to time.Time, breed string) ([]models.VoteEvent, error)
	ListAfter(ctx context.Context, seq int64, limit int) ([]models.VoteEvent, error)
}

type Repository struct {
	Dogs       DogRepo
	Points     PointsRepo
	Users      UserRepo
	VoteEvents VoteEventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Dogs:       NewDogSQLite(db),
		Points:     NewPointsSQLite(db),
		Users:      NewUserRepository(db),
		VoteEvents: NewVoteEventSQLite(db),
	}
}
