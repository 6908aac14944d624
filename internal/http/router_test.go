package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corkboardhq/corkd/internal/service"
	"github.com/corkboardhq/corkd/internal/store/drivers/sqlite"
	"github.com/corkboardhq/corkd/pkg/tokenx"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	router := NewRouter("test", st, discardLogger())
	router.AuthService = &service.AuthService{
		Store: st,
		Codec: &tokenx.Codec{
			Secret: []byte("router-test-secret"),
			Issuer: "corkd-test",
			TTL:    time.Hour,
		},
	}
	router.BoardService = &service.BoardService{Store: st}
	router.ItemService = &service.ItemService{Store: st}
	router.RolesService = &service.RolesService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// doJSON sends a JSON request and decodes the response envelope.
func doJSON(
	t *testing.T,
	method, url, token string,
	body any,
) (int, Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func dataField[T any](t *testing.T, env Envelope, key string) T {
	t.Helper()

	obj, ok := env.Data.(map[string]any)
	require.True(t, ok, "data should be an object")
	v, ok := obj[key].(T)
	require.True(t, ok, "data should carry %q", key)
	return v
}

func registerAndLogin(t *testing.T, baseURL, email, name string) string {
	t.Helper()

	code, env := doJSON(t, http.MethodPost, baseURL+"/auth/register", "", map[string]string{
		"email":    email,
		"password": "pw",
		"name":     name,
	})
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Succeed)

	code, env = doJSON(t, http.MethodPost, baseURL+"/auth/login", "", map[string]string{
		"email":    email,
		"password": "pw",
	})
	require.Equal(t, http.StatusOK, code)
	return dataField[string](t, env, "token")
}

func TestAuthRoutes(t *testing.T) {
	srv := newTestServer(t)

	code, env := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", map[string]string{
		"email":    "e@x.com",
		"password": "pw",
		"name":     "Eve",
	})
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Succeed)
	require.Equal(t, "e@x.com", dataField[string](t, env, "email"))

	t.Run("duplicate email", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", map[string]string{
			"email":    "e@x.com",
			"password": "pw2",
			"name":     "Other Eve",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.False(t, env.Succeed)
		require.Equal(t, "user already exist", env.Message)
	})

	t.Run("bad email is rejected before the store", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", map[string]string{
			"email":    "not-an-address",
			"password": "pw",
			"name":     "Nobody",
		})
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("login issues a usable token", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
			"email":    "e@x.com",
			"password": "pw",
		})
		require.Equal(t, http.StatusOK, code)
		token := dataField[string](t, env, "token")

		code, env = doJSON(t, http.MethodGet, srv.URL+"/boards", token, nil)
		require.Equal(t, http.StatusOK, code)
		require.True(t, env.Succeed)
	})

	t.Run("wrong password", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
			"email":    "e@x.com",
			"password": "wrong",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "password do not match", env.Message)
	})
}

func TestBoardRoutes(t *testing.T) {
	srv := newTestServer(t)
	adminToken := registerAndLogin(t, srv.URL, "admin@x.com", "Admin")
	memberToken := registerAndLogin(t, srv.URL, "member@x.com", "Member")

	code, env := doJSON(t, http.MethodPost, srv.URL+"/boards", adminToken, map[string]string{
		"title": "Sprint 12",
	})
	require.Equal(t, http.StatusOK, code)
	boardID := int64(dataField[float64](t, env, "id"))
	boardURL := fmt.Sprintf("%s/boards/%d", srv.URL, boardID)

	t.Run("admin can read it back", func(t *testing.T) {
		code, env := doJSON(t, http.MethodGet, boardURL, adminToken, nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "Sprint 12", dataField[string](t, env, "title"))
	})

	t.Run("outsider has no role on the board", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodGet, boardURL, memberToken, nil)
		require.Equal(t, http.StatusForbidden, code)
	})

	t.Run("only the admin can grant roles", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPost, boardURL+"/roles", memberToken, map[string]string{
			"email": "member@x.com",
			"role":  "USER",
		})
		require.Equal(t, http.StatusForbidden, code)
	})

	t.Run("granting a role by email", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, boardURL+"/roles", adminToken, map[string]string{
			"email": "member@x.com",
			"role":  "USER",
		})
		require.Equal(t, http.StatusOK, code)
		require.True(t, env.Succeed)

		// Board is now visible to the member.
		code, _ = doJSON(t, http.MethodGet, boardURL, memberToken, nil)
		require.Equal(t, http.StatusOK, code)
	})

	t.Run("granting to an unknown email", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, boardURL+"/roles", adminToken, map[string]string{
			"email": "stranger@x.com",
			"role":  "USER",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "user with this email do not exist", env.Message)
	})

	t.Run("unknown role label", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPost, boardURL+"/roles", adminToken, map[string]string{
			"email": "member@x.com",
			"role":  "OVERLORD",
		})
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("statuses", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPost, boardURL+"/statuses", adminToken, map[string]string{
			"name": "Open",
		})
		require.Equal(t, http.StatusOK, code)

		code, _ = doJSON(t, http.MethodPost, boardURL+"/statuses", adminToken, map[string]string{
			"name": "Open",
		})
		require.Equal(t, http.StatusBadRequest, code, "duplicate status name")

		code, env := doJSON(t, http.MethodGet, boardURL+"/statuses", adminToken, nil)
		require.Equal(t, http.StatusOK, code)
		require.True(t, env.Succeed)
	})

	t.Run("delete requires the admin", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodDelete, boardURL, memberToken, nil)
		require.Equal(t, http.StatusForbidden, code)

		code, _ = doJSON(t, http.MethodDelete, boardURL, adminToken, nil)
		require.Equal(t, http.StatusOK, code)

		code, _ = doJSON(t, http.MethodGet, boardURL, adminToken, nil)
		require.Equal(t, http.StatusBadRequest, code)
	})
}

func TestItemRoutes(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv.URL, "worker@x.com", "Worker")

	_, env := doJSON(t, http.MethodPost, srv.URL+"/boards", token, map[string]string{
		"title": "Chores",
	})
	boardID := int64(dataField[float64](t, env, "id"))
	boardURL := fmt.Sprintf("%s/boards/%d", srv.URL, boardID)

	_, env = doJSON(t, http.MethodPost, boardURL+"/statuses", token, map[string]string{"name": "Open"})
	statusID := int64(dataField[float64](t, env, "id"))

	code, env := doJSON(t, http.MethodPost, boardURL+"/items", token, map[string]any{
		"title":      "Mow the lawn",
		"status_id":  statusID,
		"importance": 2,
	})
	require.Equal(t, http.StatusOK, code)
	itemID := int64(dataField[float64](t, env, "id"))
	itemURL := fmt.Sprintf("%s/items/%d", srv.URL, itemID)

	t.Run("fetch", func(t *testing.T) {
		code, env := doJSON(t, http.MethodGet, itemURL, token, nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "Mow the lawn", dataField[string](t, env, "title"))
	})

	t.Run("filter by status", func(t *testing.T) {
		code, env := doJSON(t, http.MethodGet,
			fmt.Sprintf("%s/items?status_id=%d", boardURL, statusID), token, nil)
		require.Equal(t, http.StatusOK, code)

		items, ok := env.Data.([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
	})

	t.Run("clear the status", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPut, itemURL+"/status", token, map[string]any{
			"id": nil,
		})
		require.Equal(t, http.StatusOK, code)
		require.True(t, env.Succeed)
	})

	t.Run("foreign status is rejected", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPut, itemURL+"/status", token, map[string]any{
			"id": statusID + 99,
		})
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("outsider cannot touch the item", func(t *testing.T) {
		outsider := registerAndLogin(t, srv.URL, "outsider@x.com", "Outsider")
		code, _ := doJSON(t, http.MethodGet, itemURL, outsider, nil)
		require.Equal(t, http.StatusForbidden, code)
	})

	t.Run("delete", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodDelete, itemURL, token, nil)
		require.Equal(t, http.StatusOK, code)

		code, _ = doJSON(t, http.MethodGet, itemURL, token, nil)
		require.Equal(t, http.StatusBadRequest, code)
	})
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}
