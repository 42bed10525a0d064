package flash

import (
	"github.com/gofiber/fiber/v2"
	sflash "github.com/sujit-baniya/flash"
)

// Writer adapts the cookie based flash of sujit-baniya/flash to
// usercontext.FlashWriter for one request.
type Writer struct {
	c *fiber.Ctx
}

func NewWriter(c *fiber.Ctx) *Writer {
	return &Writer{c: c}
}

func (w *Writer) Success(message string) {
	sflash.WithSuccess(w.c, fiber.Map{"type": "success", "message": message})
}

func (w *Writer) Error(message string) {
	sflash.WithError(w.c, fiber.Map{"type": "error", "message": message})
}

// Get retrieves the flash message set by the previous request
func Get(c *fiber.Ctx) fiber.Map {
	return sflash.Get(c)
}
