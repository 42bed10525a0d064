package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/foxalbum/foxalbum/internal/pkg/constants"
	"github.com/foxalbum/foxalbum/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in web session; redirects to the login page if missing.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}
	return c.Next()
}
