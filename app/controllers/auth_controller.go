package controllers

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"github.com/foxalbum/foxalbum/app/models"
	"github.com/foxalbum/foxalbum/app/repository"
	"github.com/foxalbum/foxalbum/internal/pkg/constants"
	"github.com/foxalbum/foxalbum/internal/pkg/usercontext"
)

const loginFailedMessage = "There is a problem with the login process"

// AuthController handles login, registration and logout
type AuthController struct {
	users    repository.UserRepository
	sessions *session.Store
}

func NewAuthController(users repository.UserRepository, sessions *session.Store) *AuthController {
	return &AuthController{
		users:    users,
		sessions: sessions,
	}
}

func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if uc.IsLoggedIn {
		return c.Redirect(constants.DashboardRoute, fiber.StatusSeeOther)
	}

	if c.Method() != fiber.MethodPost {
		return render(c, "login", "Log in", fiber.Map{"Email": c.Query("email")})
	}

	email := strings.TrimSpace(c.FormValue("email"))

	// notice: the user is never told whether the email or the password was wrong
	user, err := ac.users.GetByEmail(c.UserContext(), email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Errorf("[Auth] Failed to load user %s: %v", email, err)
		}
		uc.FlashError(loginFailedMessage)
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}

	if !user.CheckPassword(c.FormValue("password")) {
		uc.FlashError(loginFailedMessage)
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}

	sess, err := ac.sessions.Get(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := sess.Regenerate(); err != nil {
		return respondError(c, err)
	}
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	if err := sess.Save(); err != nil {
		return respondError(c, err)
	}

	if err := ac.users.UpdateLastLogin(c.UserContext(), user.ID, time.Now()); err != nil {
		log.Warnf("[Auth] Failed to update last login of user %d: %v", user.ID, err)
	}

	return c.Redirect(constants.DashboardRoute, fiber.StatusSeeOther)
}

func (ac *AuthController) HandleRegister(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	if uc.IsLoggedIn {
		return c.Redirect(constants.DashboardRoute, fiber.StatusSeeOther)
	}

	if c.Method() != fiber.MethodPost {
		return render(c, "register", "Register", nil)
	}

	ctx := c.UserContext()
	username := strings.TrimSpace(c.FormValue("username"))
	email := strings.TrimSpace(c.FormValue("email"))

	user, err := models.CreateUser(username, email, c.FormValue("password"))
	if err != nil {
		uc.FlashError("Please check your input: a username of at least 3 characters, a valid email and a password of at least 6 characters are required")
		return c.Redirect(constants.RegisterRoute, fiber.StatusSeeOther)
	}

	if _, err := ac.users.GetByEmail(ctx, email); err == nil {
		uc.FlashError("This email address is already registered")
		return c.Redirect(constants.RegisterRoute, fiber.StatusSeeOther)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, err)
	}

	if err := ac.users.Create(ctx, user); err != nil {
		return respondError(c, err)
	}

	log.Infof("[Auth] Registered user %d", user.ID)
	uc.FlashSuccess("Registration successful, please log in")
	return c.Redirect(constants.LoginRoute+"?email="+url.QueryEscape(email), fiber.StatusSeeOther)
}

func (ac *AuthController) HandleLogout(c *fiber.Ctx) error {
	if err := destroySession(c, ac.sessions); err != nil {
		return respondError(c, err)
	}

	return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
}

// destroySession removes the session of the request and expires its cookie
func destroySession(c *fiber.Ctx, sessions *session.Store) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
