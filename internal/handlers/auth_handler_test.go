package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ShopAdmin/internal/middleware"
	"ShopAdmin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_Login(t *testing.T) {
	env := newTestEnv(t)
	adminID := env.seedAdmin(t)

	t.Run("ok sets cookie", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/login", map[string]any{"identifier": "admin", "password": "secret"}, "")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var token string
		for _, c := range rr.Result().Cookies() {
			if c.Name == middleware.CookieName {
				token = c.Value
			}
		}
		require.NotEmpty(t, token)
		uid, err := middleware.ParseToken(token, env.cfg.AuthSecret)
		require.NoError(t, err)
		assert.Equal(t, adminID, uid)

		u := decode[model.User](t, rr)
		assert.Equal(t, "admin", u.Username)
		assert.NotContains(t, rr.Body.String(), "password", "hash never leaves the server")
	})

	t.Run("by email", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/login", map[string]any{"identifier": "admin@shop.local", "password": "secret"}, "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/login", map[string]any{"identifier": "admin", "password": "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("validation errors are localized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login?lang=vi", strings.NewReader(`{"identifier":"ab"}`))
		rr := httptest.NewRecorder()
		env.router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		body := decode[errorBody](t, rr)
		require.Len(t, body.Errors["identifier"], 1)
		assert.NotEqual(t, "too_short", body.Errors["identifier"][0])
	})

	t.Run("broken json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{`))
		rr := httptest.NewRecorder()
		env.router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuth_Me(t *testing.T) {
	env := newTestEnv(t)
	adminID := env.seedAdmin(t)

	rr := env.do(t, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = env.do(t, http.MethodGet, "/api/auth/me", nil, adminID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, adminID, decode[model.User](t, rr).ID)

	rr = env.do(t, http.MethodGet, "/api/users", nil, adminID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]model.User](t, rr), 1)

	rr = env.do(t, http.MethodGet, "/api/users?role=admin", nil, adminID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]model.User](t, rr), 1)

	rr = env.do(t, http.MethodGet, "/api/users?role=seller", nil, adminID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[[]model.User](t, rr))

	rr = env.do(t, http.MethodGet, "/api/users?role=root", nil, adminID)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, []string{"Invalid user role"}, decode[errorBody](t, rr).Errors["role"])
}
