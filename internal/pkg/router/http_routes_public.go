package router

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/healthz", h.health.HandleHealth)
}
