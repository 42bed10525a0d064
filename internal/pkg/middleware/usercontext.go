package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/foxalbum/foxalbum/internal/pkg/flash"
	"github.com/foxalbum/foxalbum/internal/pkg/usercontext"
)

// UserContextMiddleware builds the request's UserContext from the session and
// attaches a flash writer, so handlers never read the session directly.
func UserContextMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uc := usercontext.UserContext{Flash: flash.NewWriter(c)}

		sess, err := store.Get(c)
		if err != nil {
			// On error: treat as anonymous user
			usercontext.SetUserContext(c, uc)
			return c.Next()
		}

		if userID, ok := sess.Get(usercontext.KeyUserID).(uint); ok && userID != 0 {
			uc.UserID = userID
			uc.IsLoggedIn = true
			if name, ok := sess.Get(usercontext.KeyUsername).(string); ok {
				uc.Username = name
			}
		}

		usercontext.SetUserContext(c, uc)
		return c.Next()
	}
}
