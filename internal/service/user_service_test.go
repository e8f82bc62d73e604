package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"doggyrank/internal/models"
	"doggyrank/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestUserService_GetUser(t *testing.T) {
	repo := &mockUserRepo{
		GetByIDFn: func(id int64) (*models.User, error) {
			if id == 1 {
				return &models.User{ID: 1, Email: "a@example.com"}, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(repo, newMemPointsRepo())

	u, err := svc.GetUser(context.Background(), 1)
	if err != nil || u.ID != 1 {
		t.Fatalf("GetUser(1) = %+v, %v", u, err)
	}
	if _, err := svc.GetUser(context.Background(), 2); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateUser_RehashesPasswordAndNormalizesEmail(t *testing.T) {
	repo := &mockUserRepo{
		UpdateFn: func(id int64, patch models.UserPatch) (*models.User, error) {
			return &models.User{ID: id, Email: *patch.Email}, nil
		},
	}
	svc := NewUserService(repo, newMemPointsRepo())

	u, err := svc.UpdateUser(context.Background(), 3, UserUpdate{
		Email:    strPtr(" New@Example.com "),
		Password: strPtr("hunter2"),
		Bio:      strPtr("pug person"),
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if u.Email != "new@example.com" {
		t.Fatalf("unexpected email %q", u.Email)
	}
	if len(repo.updateCalls) != 1 {
		t.Fatalf("expected one Update call, got %d", len(repo.updateCalls))
	}
	patch := repo.updateCalls[0]
	if patch.PasswordHash == nil || *patch.PasswordHash == "hunter2" {
		t.Fatalf("expected hashed password in patch, got %v", patch.PasswordHash)
	}
	if err := verifyPassword(*patch.PasswordHash, "hunter2"); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if patch.Bio == nil || *patch.Bio != "pug person" || patch.Name != nil || patch.Photo != nil {
		t.Fatalf("unexpected patch: %+v", patch)
	}
}

func TestUserService_UpdateUser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       UserUpdate
		updateFn func(id int64, patch models.UserPatch) (*models.User, error)
		wantIs   error
	}{
		{name: "blank email", in: UserUpdate{Email: strPtr(" ")}, wantIs: ErrInvalidInput},
		{name: "blank password", in: UserUpdate{Password: strPtr("")}, wantIs: ErrInvalidInput},
		{
			name: "missing user",
			in:   UserUpdate{Name: strPtr("x")},
			updateFn: func(int64, models.UserPatch) (*models.User, error) {
				return nil, nil
			},
			wantIs: ErrUserNotFound,
		},
		{
			name: "email taken",
			in:   UserUpdate{Email: strPtr("taken@example.com")},
			updateFn: func(int64, models.UserPatch) (*models.User, error) {
				return nil, fmt.Errorf("update user 1: %w", repository.ErrDuplicate)
			},
			wantIs: ErrEmailTaken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{UpdateFn: tt.updateFn}
			svc := NewUserService(repo, newMemPointsRepo())

			_, err := svc.UpdateUser(context.Background(), 1, tt.in)
			if !errors.Is(err, tt.wantIs) {
				t.Fatalf("expected %v, got %v", tt.wantIs, err)
			}
		})
	}
}
