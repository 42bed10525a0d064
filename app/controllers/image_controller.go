package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/foxalbum/foxalbum/internal/pkg/albums"
	"github.com/foxalbum/foxalbum/internal/pkg/constants"
	"github.com/foxalbum/foxalbum/internal/pkg/usercontext"
)

type ImageController struct {
	albums *albums.Service
}

func NewImageController(svc *albums.Service) *ImageController {
	return &ImageController{albums: svc}
}

// HandleImageServe streams the blob stored under :key
func (ic *ImageController) HandleImageServe(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	obj, contentType, err := ic.albums.GetImageBlob(c.UserContext(), uc, c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "private, max-age=3600")

	// fasthttp closes the body once it is sent
	if obj.Size >= 0 {
		return c.SendStream(obj.Body, int(obj.Size))
	}
	return c.SendStream(obj.Body)
}

// HandleImageAction runs the form intent for :key and returns to the album
func (ic *ImageController) HandleImageAction(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	albumID, err := ic.albums.ImageAction(c.UserContext(), uc, c.Params("key"), c.FormValue("intent"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Redirect(fmt.Sprintf("%s/%d", constants.AlbumsRoute, albumID), fiber.StatusSeeOther)
}
