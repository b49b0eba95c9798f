package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xautrade/meeting-server-go/internal/audit"
	"github.com/xautrade/meeting-server-go/internal/auth"
	"github.com/xautrade/meeting-server-go/internal/httputil"
	"github.com/xautrade/meeting-server-go/internal/model"
	"github.com/xautrade/meeting-server-go/internal/repository"
)

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(ctx context.Context) *model.User {
	if user, ok := ctx.Value(UserContextKey).(*model.User); ok {
		return user
	}
	return nil
}

// AuthMiddleware guards endpoints behind a bearer session token. Every
// failure mode answers with the same generic envelope so a caller cannot
// tell a bad signature from an expired token or a deleted account.
type AuthMiddleware struct {
	tokens *auth.TokenIssuer
	users  repository.UserRepository
}

func NewAuthMiddleware(tokens *auth.TokenIssuer, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			writeUnauthenticated(w)
			return
		}

		email, err := m.tokens.Validate(token)
		if err != nil {
			audit.Log(r.Context(), audit.Event{Type: audit.EventTokenRejected})
			writeUnauthenticated(w)
			return
		}

		user, err := m.users.FindByEmail(r.Context(), email)
		if err != nil {
			log.Error().Err(err).Msg("auth middleware: database error")
			httputil.WriteError(w, err)
			return
		}
		if user == nil {
			writeUnauthenticated(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func writeUnauthenticated(w http.ResponseWriter) {
	httputil.WriteEnvelope(w, httputil.Fail(http.StatusUnauthorized, "Could not validate credentials"))
}
