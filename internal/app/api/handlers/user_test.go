package handlers

import (
	"net/http"
	"testing"

	"github.com/fatflowers/coursehub/internal/app/api/middleware"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/internal/platform/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoutes_SessionFlow(t *testing.T) {
	app := newTestApp(t)
	RegisterUserRoutes(app.r.Group("/api/v1"), app.authn, middleware.NewRateLimiter(0, 0).Middleware(), app.accounts, CookieOptions{})

	w := app.do(http.MethodPost, "/api/v1/register", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	var token string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == auth.CookieName {
			token = ck.Value
			assert.True(t, ck.HttpOnly)
		}
	}
	require.NotEmpty(t, token)

	w = app.do(http.MethodPost, "/api/v1/register", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "secret123"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "User Already Exist")

	w = app.do(http.MethodGet, "/api/v1/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ada@example.com", data[models.Account](t, w).Email)

	w = app.do(http.MethodPost, "/api/v1/login", map[string]string{"email": "ada@example.com", "password": "bad"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect Email or Password")

	w = app.do(http.MethodPost, "/api/v1/login", map[string]string{"email": "ada@example.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, data[AuthResponse](t, w).Message, "Welcome back, Ada")

	w = app.do(http.MethodPut, "/api/v1/changepassword", map[string]string{"old_password": "secret123", "new_password": "secret456"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/v1/logout", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Result().Cookies())
	assert.Equal(t, "", w.Result().Cookies()[0].Value)
	assert.Negative(t, w.Result().Cookies()[0].MaxAge)

	w = app.do(http.MethodDelete, "/api/v1/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.do(http.MethodGet, "/api/v1/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserRoutes_Playlist(t *testing.T) {
	app := newTestApp(t)
	RegisterUserRoutes(app.r.Group("/api/v1"), app.authn, middleware.NewRateLimiter(0, 0).Middleware(), app.accounts, CookieOptions{})
	_, token := app.register(t, "u@example.com", "user")

	w := app.do(http.MethodPost, "/api/v1/addtoplaylist", PlaylistRequest{ID: "nope"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Course Id")
}
