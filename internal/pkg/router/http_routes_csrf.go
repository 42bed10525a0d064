package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/foxalbum/foxalbum/internal/pkg/constants"
	"github.com/foxalbum/foxalbum/internal/pkg/middleware"
)

func (h *HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !h.deps.Config.App.IsDev(),
	}

	// csrf runs per route after RequireAuth, so anonymous form posts are
	// redirected to the login page instead of failing the token check
	csrfProtect := csrf.New(csrfConf)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(constants.DashboardRoute, fiber.StatusSeeOther)
	})

	// Auth
	app.Get(constants.LoginRoute, csrfProtect, h.auth.HandleLogin)
	app.Post(constants.LoginRoute, csrfProtect, h.auth.HandleLogin)
	app.Get(constants.RegisterRoute, csrfProtect, h.auth.HandleRegister)
	app.Post(constants.RegisterRoute, csrfProtect, h.auth.HandleRegister)
	app.Post(constants.LogoutRoute, middleware.RequireAuth, csrfProtect, h.auth.HandleLogout)

	// Albums
	app.Get(constants.DashboardRoute, middleware.RequireAuth, csrfProtect, h.albums.HandleDashboard)
	app.Post(constants.DashboardRoute, middleware.RequireAuth, csrfProtect, h.albums.HandleDashboardCreate)
	app.Get(constants.AlbumsRoute+"/:id", middleware.RequireAuth, csrfProtect, h.albums.HandleAlbumView)
	app.Post(constants.AlbumsRoute+"/:id", middleware.RequireAuth, csrfProtect, h.albums.HandleAlbumUpload)

	// Images
	app.Get(constants.ImagesRoute+"/:key", middleware.RequireAuth, csrfProtect, h.images.HandleImageServe)
	app.Post(constants.ImagesRoute+"/:key", middleware.RequireAuth, csrfProtect, h.images.HandleImageAction)
}
