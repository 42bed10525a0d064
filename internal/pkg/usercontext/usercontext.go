package usercontext

import "github.com/gofiber/fiber/v2"

// FlashWriter queues a one-time message for the next rendered page.
type FlashWriter interface {
	Success(message string)
	Error(message string)
}

// UserContext is the per-request identity handed explicitly to every album
// operation. The zero value is an anonymous visitor.
type UserContext struct {
	UserID     uint        `json:"user_id"`
	Username   string      `json:"username"`
	IsLoggedIn bool        `json:"is_logged_in"`
	Flash      FlashWriter `json:"-"`
}

// FlashSuccess writes a success flash if the context carries a writer
func (uc UserContext) FlashSuccess(message string) {
	if uc.Flash != nil {
		uc.Flash.Success(message)
	}
}

// FlashError writes an error flash if the context carries a writer
func (uc UserContext) FlashError(message string) {
	if uc.Flash != nil {
		uc.Flash.Error(message)
	}
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx, ok := c.Locals(KeyUserContext).(UserContext); ok {
		return ctx
	}
	return UserContext{IsLoggedIn: false}
}

// SetUserContext stores the user context for the rest of the request
func SetUserContext(c *fiber.Ctx, uc UserContext) {
	c.Locals(KeyUserContext, uc)
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}
