package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xautrade/meeting-server-go/internal/auth"
	"github.com/xautrade/meeting-server-go/internal/model"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) FindByMobile(ctx context.Context, mobileNumber string) (*model.User, error) {
	args := m.Called(ctx, mobileNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

const testSecret = "0123456789abcdef0123456789abcdef"

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		require.NotNil(t, user)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(user.Email))
	})
}

func assertUnauthenticated(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var env struct {
		Success    bool   `json:"success"`
		StatusCode int    `json:"status_code"`
		Message    string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
	assert.Equal(t, "Could not validate credentials", env.Message)
}

func TestAuthMiddleware(t *testing.T) {
	issuer := auth.NewTokenIssuer(testSecret, 30*time.Minute)

	t.Run("valid token loads the user onto the context", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("FindByEmail", mock.Anything, "ada@example.com").
			Return(&model.User{ID: 1, Email: "ada@example.com"}, nil)

		token, err := issuer.Issue("ada@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		NewAuthMiddleware(issuer, users).Handler(protectedEcho(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ada@example.com", rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		rec := httptest.NewRecorder()

		NewAuthMiddleware(issuer, new(mockUserRepo)).Handler(protectedEcho(t)).ServeHTTP(rec, req)
		assertUnauthenticated(t, rec)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		NewAuthMiddleware(issuer, new(mockUserRepo)).Handler(protectedEcho(t)).ServeHTTP(rec, req)
		assertUnauthenticated(t, rec)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := issuer.IssueWithTTL("ada@example.com", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		NewAuthMiddleware(issuer, new(mockUserRepo)).Handler(protectedEcho(t)).ServeHTTP(rec, req)
		assertUnauthenticated(t, rec)
	})

	t.Run("token subject no longer exists", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("FindByEmail", mock.Anything, "gone@example.com").Return(nil, nil)

		token, err := issuer.Issue("gone@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		NewAuthMiddleware(issuer, users).Handler(protectedEcho(t)).ServeHTTP(rec, req)
		assertUnauthenticated(t, rec)
	})
}
