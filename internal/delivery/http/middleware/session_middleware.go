package middleware

import (
	"context"
	"net/http"
	"strings"

	"mediscript-server/internal/service"
	"mediscript-server/pkg/response"
)

type contextKey string

const sessionKey contextKey = "session"

type SessionMiddleware struct {
	sessions service.SessionStore
}

func NewSessionMiddleware(sessions service.SessionStore) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
	}
}

// Authenticate resolves the bearer token against the session store. The role
// attached to the request always comes from the stored session, never from
// the client.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		session, err := m.sessions.Get(r.Context(), token)
		if err != nil {
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if session == nil {
			response.Unauthorized(w, "Invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, session)
		ctx = WithToken(ctx, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

const tokenKey contextKey = "session_token"

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// WithSession attaches a session to the context. Exported so tests can build
// authenticated contexts without running the HTTP stack.
func WithSession(ctx context.Context, session *service.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

func GetSessionFromContext(ctx context.Context) (*service.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*service.Session)
	return session, ok
}
