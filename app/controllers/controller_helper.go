package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/foxalbum/foxalbum/internal/pkg/albums"
	"github.com/foxalbum/foxalbum/internal/pkg/constants"
	"github.com/foxalbum/foxalbum/internal/pkg/flash"
	"github.com/foxalbum/foxalbum/internal/pkg/usercontext"
	"github.com/foxalbum/foxalbum/views"
)

// respondError translates album errors into HTTP responses. Anything that is
// not one of the album sentinels is a collaborator failure and becomes a 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, albums.ErrUnauthenticated):
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	case errors.Is(err, albums.ErrNotFound):
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	case errors.Is(err, albums.ErrForbidden):
		return c.Status(fiber.StatusForbidden).SendString("Forbidden")
	case errors.Is(err, albums.ErrBadRequest), errors.Is(err, albums.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	default:
		log.Errorf("[Controller] %s %s failed: %v", c.Method(), c.Path(), err)
		return fiber.ErrInternalServerError
	}
}

func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals("csrf").(string); ok {
		return token
	}
	return ""
}

func flashMessage(c *fiber.Ctx) fiber.Map {
	if fm := flash.Get(c); fm != nil {
		return fm
	}
	return fiber.Map{}
}

// render fills the values the main layout needs and renders page into it.
func render(c *fiber.Ctx, page, title string, data fiber.Map) error {
	bind := fiber.Map{
		"Title":    title,
		"CSRF":     csrfToken(c),
		"Flash":    flashMessage(c),
		"LoggedIn": usercontext.IsLoggedIn(c),
	}
	for k, v := range data {
		bind[k] = v
	}
	return c.Render(page, bind, views.MainLayout)
}

func renderNotFound(c *fiber.Ctx, message string) error {
	c.Status(fiber.StatusNotFound)
	return render(c, "not_found", "Not found", fiber.Map{"Message": message})
}
