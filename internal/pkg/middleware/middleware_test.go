package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxalbum/foxalbum/internal/pkg/session"
	"github.com/foxalbum/foxalbum/internal/pkg/usercontext"
)

func newApp() *fiber.App {
	store := session.NewSessionStore(nil, false)

	app := fiber.New()
	app.Use(UserContextMiddleware(store))
	app.Get("/login-as/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return err
		}
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		sess.Set(usercontext.KeyUserID, uint(id))
		sess.Set(usercontext.KeyUsername, "tester")
		return sess.Save()
	})
	app.Get("/private", RequireAuth, func(c *fiber.Ctx) error {
		uc := usercontext.GetUserContext(c)
		return c.JSON(uc)
	})
	return app
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestUserContextFromSession(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login-as/42", nil))
	require.NoError(t, err)
	resp.Body.Close()

	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			sid = c.Value
		}
	}
	require.NotEmpty(t, sid)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: sid})
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var uc usercontext.UserContext
	require.NoError(t, jsonDecode(resp, &uc))
	assert.True(t, uc.IsLoggedIn)
	assert.Equal(t, uint(42), uc.UserID)
	assert.Equal(t, "tester", uc.Username)
}

func jsonDecode(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}
