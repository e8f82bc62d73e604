package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doggyrank"
	"doggyrank/internal/models"
	"doggyrank/internal/service"
)

func TestGetUser(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		user     *models.User
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "found",
			path:     "/users/7",
			user:     &models.User{ID: 7, Name: "Rex", Email: "rex@example.com", PasswordHash: "secret-hash"},
			wantCode: http.StatusOK,
		},
		{
			name:     "not found",
			path:     "/users/8",
			err:      service.ErrUserNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  msgUserNotFound,
		},
		{
			name:     "bad id",
			path:     "/users/abc",
			wantCode: http.StatusBadRequest,
			wantMsg:  msgInvalidRequest,
		},
		{
			name:     "storage error",
			path:     "/users/9",
			err:      errors.New("disk I/O error"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  msgSomethingWrong,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := &mockUsers{user: tc.user, getErr: tc.err}
			r := newTestRouter(&service.Service{Users: u})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			if tc.wantCode == http.StatusOK {
				if strings.Contains(w.Body.String(), "secret-hash") {
					t.Fatalf("password hash leaked: %s", w.Body.String())
				}
				var got models.User
				_ = json.Unmarshal(w.Body.Bytes(), &got)
				if got.ID != 7 || got.Email != "rex@example.com" {
					t.Fatalf("unexpected user: %+v", got)
				}
				return
			}
			var out doggyrank.ErrorResponse
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Message != tc.wantMsg {
				t.Fatalf("message: got %q, want %q", out.Message, tc.wantMsg)
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	cases := []struct {
		name      string
		method    string
		path      string
		token     string
		tokenUser int64
		body      string
		updateErr error
		wantCode  int
		wantCalls int
	}{
		{"no token", http.MethodPut, "/users/5", "", 5, `{"name":"x"}`, nil, http.StatusUnauthorized, 0},
		{"other user", http.MethodPut, "/users/5", "valid", 6, `{"name":"x"}`, nil, http.StatusForbidden, 0},
		{"put ok", http.MethodPut, "/users/5", "valid", 5, `{"name":"Rex","bio":"good boy"}`, nil, http.StatusOK, 1},
		{"patch ok", http.MethodPatch, "/users/5", "valid", 5, `{"password":"new"}`, nil, http.StatusOK, 1},
		{"bad email", http.MethodPatch, "/users/5", "valid", 5, `{"email":"nope"}`, nil, http.StatusBadRequest, 0},
		{"email taken", http.MethodPatch, "/users/5", "valid", 5, `{"email":"a@b.io"}`, service.ErrEmailTaken, http.StatusConflict, 1},
		{"missing", http.MethodPatch, "/users/5", "valid", 5, `{"name":"x"}`, service.ErrUserNotFound, http.StatusNotFound, 1},
		{"storage", http.MethodPatch, "/users/5", "valid", 5, `{"name":"x"}`, errors.New("boom"), http.StatusInternalServerError, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseID: tc.tokenUser}
			u := &mockUsers{user: &models.User{ID: 5, Name: "Rex"}, updateErr: tc.updateErr}
			r := newTestRouter(&service.Service{Authorization: auth, Users: u})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, withHeaders(req, authHeader(tc.token)))

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			if u.updates != tc.wantCalls {
				t.Fatalf("UpdateUser calls: got %d, want %d", u.updates, tc.wantCalls)
			}
		})
	}
}

func TestUpdateUser_PassesOnlyProvidedFields(t *testing.T) {
	auth := &mockAuth{parseID: 5}
	u := &mockUsers{user: &models.User{ID: 5}}
	r := newTestRouter(&service.Service{Authorization: auth, Users: u})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/5", bytes.NewBufferString(`{"bio":"likes walks","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, withHeaders(req, authHeader("valid")))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	in := u.lastUpdate
	if in.Name != nil || in.Email != nil || in.Photo != nil {
		t.Fatalf("unexpected fields set: %+v", in)
	}
	if in.Bio == nil || *in.Bio != "likes walks" || in.Password == nil || *in.Password != "pw" {
		t.Fatalf("bio/password not forwarded: %+v", in)
	}
}

func TestListUserPoints(t *testing.T) {
	u := &mockUsers{points: []models.BreedPoints{
		{Points: models.Points{ID: 1, UserID: 4, DogID: 2, Points: 10}, Breed: "maltese"},
		{Points: models.Points{ID: 2, UserID: 4, DogID: 3, Points: -3}, Breed: "pug"},
	}}
	r := newTestRouter(&service.Service{Users: u})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/4/points", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int `json:"count"`
		Points []struct {
			DogID  int64  `json:"dog_id"`
			Breed  string `json:"breed"`
			Points int    `json:"points"`
		} `json:"points"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 2 || out.Points[0].Breed != "maltese" || out.Points[1].Points != -3 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if u.lastID != 4 {
		t.Fatalf("ListPoints user: got %d", u.lastID)
	}

	u.pointsErr = errors.New("boom")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/4/points", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
