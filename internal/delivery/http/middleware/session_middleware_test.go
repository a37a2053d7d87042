package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediscript-server/internal/domain/entity"
	"mediscript-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionStore struct {
	sessions map[string]*service.Session
}

func (s *stubSessionStore) Create(_ context.Context, _ *service.Session) (string, error) {
	return "", nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*service.Session, error) {
	return s.sessions[token], nil
}

func (s *stubSessionStore) Delete(_ context.Context, _ string) error { return nil }

func newAuthenticatedHandler(store *stubSessionStore) http.Handler {
	m := NewSessionMiddleware(store)
	return m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSessionFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(session.UserID))
	}))
}

func TestAuthenticateValidToken(t *testing.T) {
	t.Parallel()
	store := &stubSessionStore{sessions: map[string]*service.Session{
		"tok123": {UserID: "pat1", Role: entity.RolePatient},
	}}
	handler := newAuthenticatedHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/patient/profile", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pat1", rec.Body.String())
}

func TestAuthenticateMissingHeader(t *testing.T) {
	t.Parallel()
	handler := newAuthenticatedHandler(&stubSessionStore{sessions: map[string]*service.Session{}})

	req := httptest.NewRequest(http.MethodGet, "/patient/profile", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateUnknownToken(t *testing.T) {
	t.Parallel()
	handler := newAuthenticatedHandler(&stubSessionStore{sessions: map[string]*service.Session{}})

	req := httptest.NewRequest(http.MethodGet, "/patient/profile", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	t.Parallel()
	handler := newAuthenticatedHandler(&stubSessionStore{sessions: map[string]*service.Session{}})

	req := httptest.NewRequest(http.MethodGet, "/patient/profile", nil)
	req.Header.Set("Authorization", "tok123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAdmin(next)

	// Role comes from the stored session, not the request.
	req := httptest.NewRequest(http.MethodGet, "/admin/summary", nil)
	req = req.WithContext(WithSession(req.Context(), &service.Session{UserID: "pat1", Role: entity.RolePatient}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/summary", nil)
	req = req.WithContext(WithSession(req.Context(), &service.Session{UserID: "adm1", Role: entity.RoleAdmin}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// No session at all is unauthorized.
	req = httptest.NewRequest(http.MethodGet, "/admin/summary", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenContextRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithToken(context.Background(), "tok123")
	token, ok := GetTokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok123", token)

	_, ok = GetTokenFromContext(context.Background())
	assert.False(t, ok)
}
