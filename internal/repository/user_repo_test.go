// user_repo_test.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"doggyrank/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return db, mock, cleanup
}

func contains(s, substr string) bool {
	return len(substr) == 0 || (len(s) >= len(substr) && regexp.MustCompile(regexp.QuoteMeta(substr)).FindStringIndex(s) != nil)
}

var userColumns = []string{"id", "name", "email", "password_hash", "photo", "bio", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name           string
		user           models.User
		mockExpect     func(sqlmock.Sqlmock)
		wantID         int64
		wantErr        bool
		errContainsStr string
	}{
		{
			name: "success",
			user: models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h123"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Alice", "alice@example.com", "h123", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "exec error",
			user: models.User{Email: "bob@example.com", PasswordHash: "h456"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr:        true,
			errContainsStr: "insert user",
		},
		{
			name: "last insert id error",
			user: models.User{Email: "carol@example.com", PasswordHash: "h789"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			wantErr:        true,
			errContainsStr: "get last insert id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			repo := NewUserRepository(db)

			tt.mockExpect(mock)

			id, err := repo.Create(context.Background(), tt.user)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				if id != 0 {
					t.Fatalf("expected id=0 on error, got %d", id)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("unexpected id: want %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ts := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		email          string
		mockExpect     func(sqlmock.Sqlmock)
		wantUser       *models.User
		wantErr        bool
		errContainsStr string
	}{
		{
			name:  "found",
			email: "alice@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userColumns).
					AddRow(7, "Alice", "alice@example.com", "h123", "p.jpg", "hi", ts, ts)
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("alice@example.com").
					WillReturnRows(rows)
			},
			wantUser: &models.User{ID: 7, Name: "Alice", Email: "alice@example.com", PasswordHash: "h123", Photo: "p.jpg", Bio: "hi"},
		},
		{
			name:  "not found (ErrNoRows)",
			email: "missing@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("missing@example.com").
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name:  "query error",
			email: "bob@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("bob@example.com").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr:        true,
			errContainsStr: "select user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			repo := NewUserRepository(db)

			tt.mockExpect(mock)

			u, err := repo.GetByEmail(context.Background(), tt.email)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				if u != nil {
					t.Fatalf("expected user=nil on error, got %+v", u)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil {
				t.Fatalf("expected user, got nil")
			}
			if u.ID != tt.wantUser.ID || u.Email != tt.wantUser.Email || u.PasswordHash != tt.wantUser.PasswordHash ||
				u.Name != tt.wantUser.Name || u.Photo != tt.wantUser.Photo || u.Bio != tt.wantUser.Bio {
				t.Fatalf("unexpected user: want %+v, got %+v", tt.wantUser, u)
			}
			if !u.CreatedAt.Equal(ts) {
				t.Fatalf("unexpected created_at: %v", u.CreatedAt)
			}
		})
	}
}

func TestUserRepository_Update_OnlyPatchedColumns(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewUserRepository(db)

	name := "Alicia"
	bio := "likes pugs"
	ts := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET name = ?, bio = ?, updated_at = ? WHERE id = ?")).
		WithArgs("Alicia", "likes pugs", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(7, "Alicia", "alice@example.com", "h123", "", "likes pugs", ts, ts))

	u, err := repo.Update(context.Background(), 7, models.UserPatch{Name: &name, Bio: &bio})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if u == nil || u.Name != "Alicia" || u.Bio != "likes pugs" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserRepository_Update_MissingUserReturnsNil(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewUserRepository(db)

	photo := "x.png"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET photo = ?, updated_at = ? WHERE id = ?")).
		WithArgs("x.png", sqlmock.AnyArg(), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	u, err := repo.Update(context.Background(), 99, models.UserPatch{Photo: &photo})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}
}

func TestUserRepository_Update_ExecError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("UPDATE users SET").
		WillReturnError(errors.New("locked"))

	_, err := repo.Update(context.Background(), 1, models.UserPatch{})
	if err == nil || !contains(err.Error(), "update user 1") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
