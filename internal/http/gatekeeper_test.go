package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corkboardhq/corkd/internal/service"
	"github.com/corkboardhq/corkd/internal/store"
	"github.com/corkboardhq/corkd/internal/store/drivers/sqlite"
	"github.com/corkboardhq/corkd/pkg/tokenx"
)

func newGatekeeperFixture(t *testing.T) (*service.AuthService, store.Store) {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	auth := &service.AuthService{
		Store: st,
		Codec: &tokenx.Codec{
			Secret: []byte("gatekeeper-test-secret"),
			Issuer: "corkd-test",
			TTL:    time.Hour,
		},
	}
	return auth, st
}

// echoPrincipal reports whether the gatekeeper attached a principal.
func echoPrincipal(t *testing.T, reached *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		if _, ok := PrincipalFromContext(r.Context()); ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestGatekeeperMissingToken(t *testing.T) {
	auth, _ := newGatekeeperFixture(t)

	var reached bool
	handler := Gatekeeper(auth)(echoPrincipal(t, &reached))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boards", nil))

	require.False(t, reached)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))

	body, _ := io.ReadAll(rec.Body)
	require.Equal(t, "Something in the request wasn't properly written, try again", string(body))
}

func TestGatekeeperInvalidToken(t *testing.T) {
	auth, _ := newGatekeeperFixture(t)

	var reached bool
	handler := Gatekeeper(auth)(echoPrincipal(t, &reached))

	req := httptest.NewRequest(http.MethodGet, "/boards", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.False(t, reached)
	require.Equal(t, http.StatusNotFound, rec.Code, "invalid tokens 404 rather than 401")

	body, _ := io.ReadAll(rec.Body)
	require.Equal(t, "Invalid Token", string(body))
}

func TestGatekeeperValidToken(t *testing.T) {
	auth, _ := newGatekeeperFixture(t)
	ctx := t.Context()

	_, err := auth.Register(ctx, "d@x.com", "pw", "Dana")
	require.NoError(t, err)
	result, err := auth.Login(ctx, "d@x.com", "pw")
	require.NoError(t, err)

	var reached bool
	handler := Gatekeeper(auth)(echoPrincipal(t, &reached))

	req := httptest.NewRequest(http.MethodGet, "/boards", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.True(t, reached)
	require.Equal(t, http.StatusOK, rec.Code, "principal should be on the context")
}

func TestGatekeeperDeletedAccount(t *testing.T) {
	auth, st := newGatekeeperFixture(t)
	ctx := t.Context()

	user, err := auth.Register(ctx, "gone@x.com", "pw", "Gone")
	require.NoError(t, err)
	result, err := auth.Login(ctx, "gone@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, st.Users().DeleteUser(ctx, user.ID))

	var reached bool
	handler := Gatekeeper(auth)(echoPrincipal(t, &reached))

	req := httptest.NewRequest(http.MethodGet, "/boards", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.False(t, reached)
	require.Equal(t, http.StatusNotFound, rec.Code, "a token must not outlive its account")
}

func TestGatekeeperAllowlist(t *testing.T) {
	auth, _ := newGatekeeperFixture(t)

	cases := []struct {
		name   string
		method string
		path   string
	}{
		{"auth marker", http.MethodPost, "/auth/login"},
		{"ws marker", http.MethodGet, "/ws/updates"},
		{"error marker", http.MethodGet, "/error"},
		{"preflight", http.MethodOptions, "/boards"},
		{"liveness", http.MethodGet, "/livez"},
		{"readiness", http.MethodGet, "/readyz"},
		{"swagger", http.MethodGet, "/swagger/index.html"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var reached bool
			handler := Gatekeeper(auth)(echoPrincipal(t, &reached))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			require.True(t, reached, "allowlisted request must pass without a token")
			require.Equal(t, http.StatusNoContent, rec.Code, "no principal is attached on bypass")
		})
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
