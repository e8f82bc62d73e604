package handlers

import (
	"context"
	"net/http"
	"sync"

	"doggyrank"
	"doggyrank/internal/models"
	"doggyrank/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int64
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int64
	parseErr      error

	lastSignUp      service.SignUpInput
	lastGenEmail    string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) SignUp(ctx context.Context, in service.SignUpInput) (int64, error) {
	m.lastSignUp = in
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, email, password string) (string, error) {
	m.lastGenEmail = email
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int64, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockUsers struct {
	user      *models.User
	getErr    error
	updateErr error
	points    []models.BreedPoints
	pointsErr error

	lastID     int64
	lastUpdate service.UserUpdate
	updates    int
}

func (m *mockUsers) GetUser(ctx context.Context, id int64) (*models.User, error) {
	m.lastID = id
	return m.user, m.getErr
}
func (m *mockUsers) UpdateUser(ctx context.Context, id int64, in service.UserUpdate) (*models.User, error) {
	m.updates++
	m.lastID = id
	m.lastUpdate = in
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.user, nil
}
func (m *mockUsers) ListPoints(ctx context.Context, userID int64) ([]models.BreedPoints, error) {
	m.lastID = userID
	return m.points, m.pointsErr
}

type voteCall struct {
	userID int64
	breed  string
}

type mockVoting struct {
	upResp   models.Points
	upErr    error
	downResp models.Points
	downErr  error

	ups   []voteCall
	downs []voteCall
}

func (m *mockVoting) VoteUp(ctx context.Context, userID int64, breed string) (models.Points, error) {
	m.ups = append(m.ups, voteCall{userID, breed})
	return m.upResp, m.upErr
}
func (m *mockVoting) VoteDown(ctx context.Context, userID int64, breed string) (models.Points, error) {
	m.downs = append(m.downs, voteCall{userID, breed})
	return m.downResp, m.downErr
}

type mockVoteLog struct {
	resp       []models.VoteEvent
	err        error
	lastFilter service.LogFilter

	// feed is served by ListAfter; guarded since the websocket loop runs in another goroutine.
	mu       sync.Mutex
	feed     []models.VoteEvent
	feedErr  error
	afterSeq []int64
}

func (m *mockVoteLog) List(ctx context.Context, f service.LogFilter) ([]models.VoteEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}
func (m *mockVoteLog) ListAfter(ctx context.Context, seq int64, limit int) ([]models.VoteEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.afterSeq = append(m.afterSeq, seq)
	if m.feedErr != nil {
		return nil, m.feedErr
	}
	var out []models.VoteEvent
	for _, e := range m.feed {
		if e.Seq > seq && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}
func (m *mockVoteLog) push(e models.VoteEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feed = append(m.feed, e)
}

type mockDogImages struct {
	img doggyrank.DogImage
	err error
}

func (m *mockDogImages) RandomDog(ctx context.Context) (doggyrank.DogImage, error) {
	return m.img, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withHeaders(req *http.Request, hdr http.Header) *http.Request {
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
