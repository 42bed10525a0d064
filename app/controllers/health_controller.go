package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/foxalbum/foxalbum/internal/pkg/database"
	"github.com/foxalbum/foxalbum/internal/pkg/storage"
)

const healthTimeout = 3 * time.Second

// HealthController reports whether the collaborators of the app are reachable
type HealthController struct {
	db    *gorm.DB
	store storage.Store
	// pingCache is optional
	pingCache func(ctx context.Context) error
}

func NewHealthController(db *gorm.DB, store storage.Store, pingCache func(ctx context.Context) error) *HealthController {
	return &HealthController{
		db:        db,
		store:     store,
		pingCache: pingCache,
	}
}

func (hc *HealthController) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	checks := fiber.Map{}
	healthy := true
	check := func(name string, err error) {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
			return
		}
		checks[name] = "ok"
	}

	check("database", database.Ping(ctx, hc.db))
	check("storage", hc.store.Ping(ctx))
	if hc.pingCache != nil {
		check("cache", hc.pingCache(ctx))
	}

	status := "ok"
	code := fiber.StatusOK
	if !healthy {
		status = "unavailable"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
	})
}
