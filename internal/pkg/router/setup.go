package router

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/foxalbum/foxalbum/internal/pkg/config"
	"github.com/foxalbum/foxalbum/internal/pkg/storage"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Dependencies are the collaborators built at startup that the routes need.
type Dependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Store    storage.Store
	Sessions *session.Store
	Logger   zerolog.Logger
	// PingCache is reported by /healthz when set.
	PingCache func(ctx context.Context) error
}

func InstallRouter(app *fiber.App, deps Dependencies) {
	setup(app, NewHttpRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
