package service_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corkboardhq/corkd/internal/github"
	"github.com/corkboardhq/corkd/internal/service"
	"github.com/corkboardhq/corkd/internal/store"
	"github.com/corkboardhq/corkd/internal/store/drivers/sqlite"
	"github.com/corkboardhq/corkd/pkg/tokenx"
)

// newTestStore opens a throwaway file-backed store with migrations applied.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestCodec() *tokenx.Codec {
	return &tokenx.Codec{
		Secret: []byte("test-secret-not-for-production"),
		Issuer: "corkd-test",
		TTL:    time.Hour,
	}
}

func newTestAuth(t *testing.T, st store.Store) *service.AuthService {
	t.Helper()
	return &service.AuthService{Store: st, Codec: newTestCodec()}
}

// newStubGitHub fakes the provider: "good-code" exchanges for a fixed token
// which serves the given profile.
func newStubGitHub(t *testing.T, login, name, email string) *github.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("code") != "good-code" {
			_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"gho_stubtoken","token_type":"bearer"}`))
	})
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer gho_stubtoken" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(
			`{"login":"` + login + `","name":"` + name + `","email":"` + email + `"}`,
		))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := github.NewClient("client-id", "client-secret")
	c.TokenURL = srv.URL + "/token"
	c.UserURL = srv.URL + "/user"
	return c
}
