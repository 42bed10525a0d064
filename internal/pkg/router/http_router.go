package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/foxalbum/foxalbum/app/controllers"
	"github.com/foxalbum/foxalbum/app/repository"
	"github.com/foxalbum/foxalbum/internal/pkg/albums"
	"github.com/foxalbum/foxalbum/internal/pkg/middleware"
)

type HttpRouter struct {
	deps Dependencies

	albums *controllers.AlbumController
	images *controllers.ImageController
	auth   *controllers.AuthController
	health *controllers.HealthController
}

func NewHttpRouter(deps Dependencies) *HttpRouter {
	return &HttpRouter{deps: deps}
}

func (h *HttpRouter) InstallRouter(app *fiber.App) {
	repos := repository.NewFactory(h.deps.DB)

	svc := albums.NewService(repos.GetAlbumRepository(), repos.GetImageRepository(), h.deps.Store, albums.Options{
		ImageOwnerOnly: h.deps.Config.ImageOwnerOnly,
		Logger:         &h.deps.Logger,
	})

	h.albums = controllers.NewAlbumController(svc, repos.GetUserRepository(), h.deps.Sessions)
	h.images = controllers.NewImageController(svc)
	h.auth = controllers.NewAuthController(repos.GetUserRepository(), h.deps.Sessions)
	h.health = controllers.NewHealthController(h.deps.DB, h.deps.Store, h.deps.PingCache)

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware(h.deps.Sessions))

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}
