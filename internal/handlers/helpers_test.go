package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"MovieBase/internal/config"
	"MovieBase/internal/filter"
	"MovieBase/internal/handlers"
	"MovieBase/internal/model"
	"MovieBase/internal/repo"
	"MovieBase/internal/service"
	"MovieBase/internal/token"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if u, ok := args.Get(0).([]model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, userID int64, digest string) error {
	return m.Called(ctx, userID, digest).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockMovieRepo struct{ mock.Mock }

func (m *mockMovieRepo) List(ctx context.Context, q filter.MovieQuery) ([]model.Movie, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).([]model.Movie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Movie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) Create(ctx context.Context, movie *model.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *mockMovieRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.Movie, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Movie); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.MovieRepository = (*mockMovieRepo)(nil)

// --- Helpers ---

const testSecret = "test-secret"

func newTestTokens() *token.Manager {
	return token.NewManager(testSecret, time.Hour)
}

// newTestRouter собирает роутер поверх произвольных репозиториев
func newTestRouter(t *testing.T, ur repo.UserRepository, mr repo.MovieRepository) (http.Handler, *token.Manager) {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()
	tokens := newTestTokens()

	userSvc := service.NewUserService(ur, tokens)
	movieSvc := service.NewMovieService(mr, service.DefaultMoviePolicy())

	h := handlers.NewHandler(userSvc, movieSvc, tokens, logger, cfg)
	return h.Router, tokens
}

func addBearer(t *testing.T, req *http.Request, tokens *token.Manager, userID int64) {
	t.Helper()
	tok, err := tokens.Issue(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
}
