package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxalbum/foxalbum/app/repository"
	"github.com/foxalbum/foxalbum/internal/pkg/database/dbtest"
	"github.com/foxalbum/foxalbum/internal/pkg/middleware"
	"github.com/foxalbum/foxalbum/internal/pkg/session"
	"github.com/foxalbum/foxalbum/internal/pkg/usercontext"
	"github.com/foxalbum/foxalbum/views"
)

type authEnv struct {
	app   *fiber.App
	repos *repository.Repositories
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()

	db := dbtest.Open(t)
	repos := repository.NewRepositories(db)
	sessions := session.NewSessionStore(nil, false)
	ac := NewAuthController(repos.User, sessions)

	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	app.Use(middleware.UserContextMiddleware(sessions))
	app.Get("/auth/login", ac.HandleLogin)
	app.Post("/auth/login", ac.HandleLogin)
	app.Get("/auth/register", ac.HandleRegister)
	app.Post("/auth/register", ac.HandleRegister)
	app.Post("/auth/logout", middleware.RequireAuth, ac.HandleLogout)
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(usercontext.GetUserContext(c))
	})

	return &authEnv{app: app, repos: repos}
}

func (e *authEnv) send(t *testing.T, req *http.Request, sessionID string) *http.Response {
	t.Helper()
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c.Value
		}
	}
	return ""
}

func TestAuthPagesRender(t *testing.T) {
	env := newAuthEnv(t)

	for _, path := range []string{"/auth/login", "/auth/register"} {
		resp := env.send(t, httptest.NewRequest(http.MethodGet, path, nil), "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestRegisterLoginLogout(t *testing.T) {
	env := newAuthEnv(t)

	resp := env.send(t, formRequest("/auth/register", url.Values{
		"username": {"carol"},
		"email":    {"carol@example.com"},
		"password": {"s3cret-pass"},
	}), "")
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/auth/login?email=carol%40example.com", resp.Header.Get(fiber.HeaderLocation))

	user, err := env.repos.User.GetByEmail(context.Background(), "carol@example.com")
	require.NoError(t, err)
	assert.True(t, user.CheckPassword("s3cret-pass"))

	resp = env.send(t, formRequest("/auth/login", url.Values{
		"email":    {"carol@example.com"},
		"password": {"wrong-pass"},
	}), "")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get(fiber.HeaderLocation))

	resp = env.send(t, formRequest("/auth/login", url.Values{
		"email":    {"carol@example.com"},
		"password": {"s3cret-pass"},
	}), "")
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get(fiber.HeaderLocation))
	sid := sessionCookie(resp)
	require.NotEmpty(t, sid)

	resp = env.send(t, httptest.NewRequest(http.MethodGet, "/whoami", nil), sid)
	var uc usercontext.UserContext
	require.NoError(t, decodeJSON(resp, &uc))
	assert.True(t, uc.IsLoggedIn)
	assert.Equal(t, user.ID, uc.UserID)
	assert.Equal(t, "carol", uc.Username)

	loaded, err := env.repos.User.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, loaded.LastLoginAt)

	resp = env.send(t, httptest.NewRequest(http.MethodPost, "/auth/logout", nil), sid)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get(fiber.HeaderLocation))

	resp = env.send(t, httptest.NewRequest(http.MethodGet, "/whoami", nil), sid)
	uc = usercontext.UserContext{}
	require.NoError(t, decodeJSON(resp, &uc))
	assert.False(t, uc.IsLoggedIn)
}

func TestRegisterRejectsInvalidAndDuplicate(t *testing.T) {
	env := newAuthEnv(t)
	dbUser, err := env.repos.User.GetByEmail(context.Background(), "dave@example.com")
	require.Error(t, err)
	require.Nil(t, dbUser)

	tests := []struct {
		name   string
		values url.Values
	}{
		{name: "short password", values: url.Values{"username": {"dave"}, "email": {"dave@example.com"}, "password": {"123"}}},
		{name: "invalid email", values: url.Values{"username": {"dave"}, "email": {"not-an-email"}, "password": {"secret123"}}},
		{name: "missing username", values: url.Values{"email": {"dave@example.com"}, "password": {"secret123"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.send(t, formRequest("/auth/register", tt.values), "")
			assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, "/auth/register", resp.Header.Get(fiber.HeaderLocation))
		})
	}

	_, err = env.repos.User.GetByEmail(context.Background(), "dave@example.com")
	assert.Error(t, err)

	valid := url.Values{"username": {"dave"}, "email": {"dave@example.com"}, "password": {"secret123"}}
	resp := env.send(t, formRequest("/auth/register", valid), "")
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	resp = env.send(t, formRequest("/auth/register", valid), "")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/auth/register", resp.Header.Get(fiber.HeaderLocation))
}

func TestLogoutRequiresLogin(t *testing.T) {
	env := newAuthEnv(t)

	resp := env.send(t, httptest.NewRequest(http.MethodPost, "/auth/logout", nil), "")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get(fiber.HeaderLocation))
}
