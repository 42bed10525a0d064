package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"github.com/foxalbum/foxalbum/app/repository"
	"github.com/foxalbum/foxalbum/internal/pkg/albums"
	"github.com/foxalbum/foxalbum/internal/pkg/constants"
	"github.com/foxalbum/foxalbum/internal/pkg/usercontext"
	"github.com/foxalbum/foxalbum/internal/pkg/utils"
)

// AlbumController serves the dashboard and the album pages
type AlbumController struct {
	albums   *albums.Service
	users    repository.UserRepository
	sessions *session.Store
}

// NewAlbumController creates a new album controller
func NewAlbumController(svc *albums.Service, users repository.UserRepository, sessions *session.Store) *AlbumController {
	return &AlbumController{
		albums:   svc,
		users:    users,
		sessions: sessions,
	}
}

// HandleDashboard lists the albums of the logged-in user
func (ac *AlbumController) HandleDashboard(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	ctx := c.UserContext()

	user, err := ac.users.GetByID(ctx, uc.UserID)
	if err != nil {
		// session of a user that no longer exists, drop it or the login page
		// sends the browser straight back here
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := destroySession(c, ac.sessions); err != nil {
				return respondError(c, err)
			}
			return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
		}
		return respondError(c, err)
	}

	list, err := ac.albums.ListAlbums(ctx, uc)
	if err != nil {
		return respondError(c, err)
	}

	return render(c, "dashboard", "Albums", fiber.Map{
		"Email":  user.Email,
		"Avatar": utils.GetGravatarURL(user.Email, 48),
		"Albums": list,
	})
}

// HandleDashboardCreate creates an album from the dashboard form
func (ac *AlbumController) HandleDashboardCreate(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	_, err := ac.albums.CreateAlbum(c.UserContext(), uc, c.FormValue("title"), c.FormValue("description"))
	if errors.Is(err, albums.ErrInvalidInput) {
		uc.FlashError("Please enter a title and a description")
		return c.Redirect(constants.DashboardRoute, fiber.StatusSeeOther)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.Redirect(constants.DashboardRoute, fiber.StatusSeeOther)
}

// HandleAlbumView shows one album with its photos
func (ac *AlbumController) HandleAlbumView(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	albumID, err := c.ParamsInt("id")
	if err != nil || albumID <= 0 {
		return renderNotFound(c, fmt.Sprintf("Album %s is not found.", c.Params("id")))
	}

	album, err := ac.albums.GetAlbum(c.UserContext(), uc, uint(albumID))
	if errors.Is(err, albums.ErrNotFound) {
		return renderNotFound(c, fmt.Sprintf("Album %d is not found.", albumID))
	}
	if err != nil {
		return respondError(c, err)
	}

	return render(c, "album", album.Title, fiber.Map{"Album": album})
}

// HandleAlbumUpload stores the multipart field "file" as a new photo of the album
func (ac *AlbumController) HandleAlbumUpload(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	albumID, err := c.ParamsInt("id")
	if err != nil || albumID <= 0 {
		return renderNotFound(c, fmt.Sprintf("Album %s is not found.", c.Params("id")))
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fmt.Errorf("%w: the form field file is missing", albums.ErrBadRequest))
	}

	file, err := fh.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("open upload: %w", err))
	}
	defer file.Close()

	if _, err := ac.albums.UploadImage(c.UserContext(), uc, uint(albumID), file, fh.Size, fh.Filename); err != nil {
		return respondError(c, err)
	}

	return c.Redirect(fmt.Sprintf("%s/%d", constants.AlbumsRoute, albumID), fiber.StatusSeeOther)
}
