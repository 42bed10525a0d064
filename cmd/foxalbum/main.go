package main

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/foxalbum/foxalbum/internal/pkg/cache"
	"github.com/foxalbum/foxalbum/internal/pkg/config"
	"github.com/foxalbum/foxalbum/internal/pkg/database"
	applog "github.com/foxalbum/foxalbum/internal/pkg/logger"
	"github.com/foxalbum/foxalbum/internal/pkg/router"
	"github.com/foxalbum/foxalbum/internal/pkg/session"
	"github.com/foxalbum/foxalbum/internal/pkg/storage"
	"github.com/foxalbum/foxalbum/views"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app, err := NewApplication(cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(app.Listen(cfg.App.Addr()))
}

func NewApplication(cfg *config.Config) (*fiber.App, error) {
	zlog := applog.New(cfg.App.IsDev())

	db, err := database.SetupDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	cache.SetupCache(cfg.Cache)

	store, err := storage.NewStore(context.Background(), cfg.Storage, zlog)
	if err != nil {
		return nil, err
	}

	sessions := session.NewSessionStore(session.NewRedisStorage(cfg.Cache), !cfg.App.IsDev())

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(),
		BodyLimit:    cfg.App.BodyLimit,
		ErrorHandler: errorHandler,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	if cfg.Metrics.Password != "" {
		app.Get("/metrics", basicauth.New(basicauth.Config{
			Users: map[string]string{
				cfg.Metrics.User: cfg.Metrics.Password,
			},
		}), monitor.New(monitor.Config{Title: "FoxAlbum Metrics"}))
	}

	// ROUTER
	router.InstallRouter(app, router.Dependencies{
		Config:    cfg,
		DB:        db,
		Store:     store,
		Sessions:  sessions,
		Logger:    zlog,
		PingCache: cache.Ping,
	})

	return app, nil
}

// errorHandler answers with the plain status text of the error.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(utils.StatusMessage(code))
}
