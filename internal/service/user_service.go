package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doggyrank/internal/models"
	"doggyrank/internal/repository"
)

// UserUpdate lists the profile fields a caller may change. Nil means unchanged.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Photo    *string
	Bio      *string
}

type UserService struct {
	userRepo   repository.UserRepo
	pointsRepo repository.PointsRepo
}

func NewUserService(userRepo repository.UserRepo, pointsRepo repository.PointsRepo) *UserService {
	return &UserService{userRepo: userRepo, pointsRepo: pointsRepo}
}

// GetUser returns the user or ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateUser applies in to the user. A new password is re-hashed before storage.
func (s *UserService) UpdateUser(ctx context.Context, id int64, in UserUpdate) (*models.User, error) {
	patch := models.UserPatch{
		Name:  in.Name,
		Photo: in.Photo,
		Bio:   in.Bio,
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return nil, fmt.Errorf("%w: email is empty", ErrInvalidInput)
		}
		patch.Email = &email
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		patch.PasswordHash = &hash
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	u, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ListPoints returns the user's points per breed.
func (s *UserService) ListPoints(ctx context.Context, userID int64) ([]models.BreedPoints, error) {
	return s.pointsRepo.ListByUser(ctx, userID)
}
