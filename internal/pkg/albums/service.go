// Package albums implements album and photo operations scoped to the
// requesting user, and keeps image rows and their blobs in step.
package albums

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/foxalbum/foxalbum/app/models"
	"github.com/foxalbum/foxalbum/app/repository"
	"github.com/foxalbum/foxalbum/internal/pkg/storage"
	"github.com/foxalbum/foxalbum/internal/pkg/usercontext"
)

// IntentDelete is the only supported image action.
const IntentDelete = "delete"

const (
	msgAlbumCreated  = "Album created successfully"
	msgPhotoUploaded = "Photo uploaded successfully"
	msgPhotoDeleted  = "Photo deleted successfully"
)

// Options tune a Service. The zero value serves blobs to any logged-in user
// and discards logs.
type Options struct {
	// ImageOwnerOnly makes GetImageBlob require an image row owned by the caller.
	ImageOwnerOnly bool
	Logger         *zerolog.Logger
}

// Service runs album and photo operations for the user named by the
// UserContext passed to each call.
type Service struct {
	albums         repository.AlbumRepository
	images         repository.ImageRepository
	blobs          storage.Store
	imageOwnerOnly bool
	log            zerolog.Logger
}

// NewService wires the repositories and the blob store into a Service.
func NewService(albums repository.AlbumRepository, images repository.ImageRepository, blobs storage.Store, opts Options) *Service {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "albums").Logger()
	}
	return &Service{
		albums:         albums,
		images:         images,
		blobs:          blobs,
		imageOwnerOnly: opts.ImageOwnerOnly,
		log:            log,
	}
}

// ListAlbums returns the caller's albums, newest first, each with ImageCount set.
func (s *Service) ListAlbums(ctx context.Context, uc usercontext.UserContext) ([]models.Album, error) {
	userID, err := requireUser(uc)
	if err != nil {
		return nil, err
	}

	albums, err := s.albums.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	return albums, nil
}

// GetAlbum returns one of the caller's albums with its images loaded.
// Albums of other users are reported as ErrNotFound.
func (s *Service) GetAlbum(ctx context.Context, uc usercontext.UserContext, albumID uint) (*models.Album, error) {
	userID, err := requireUser(uc)
	if err != nil {
		return nil, err
	}

	album, err := s.albums.GetByIDAndUserID(ctx, albumID, userID, true)
	if err != nil {
		return nil, collaboratorErr("get album", err)
	}
	return album, nil
}

// CreateAlbum validates the trimmed title and description and stores a new
// album owned by the caller.
func (s *Service) CreateAlbum(ctx context.Context, uc usercontext.UserContext, title, description string) (*models.Album, error) {
	userID, err := requireUser(uc)
	if err != nil {
		return nil, err
	}

	album := &models.Album{
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if err := album.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.albums.Create(ctx, album); err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}

	uc.FlashSuccess(msgAlbumCreated)
	return album, nil
}

// UploadImage stores file as a new photo of the album. The album must belong to
// the caller; this is checked before any blob is written. The blob is written
// before the row, so a failed insert can only leave an orphaned blob.
func (s *Service) UploadImage(ctx context.Context, uc usercontext.UserContext, albumID uint, file io.Reader, size int64, filename string) (*models.Image, error) {
	userID, err := requireUser(uc)
	if err != nil {
		return nil, err
	}

	if _, err := s.albums.GetByIDAndUserID(ctx, albumID, userID, false); err != nil {
		return nil, collaboratorErr("get album", err)
	}

	key, err := s.blobs.PutRandom(ctx, file, size, ExtensionFromFilename(filename))
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	image := &models.Image{
		Key:     key,
		AlbumID: albumID,
		UserID:  userID,
	}
	if err := s.images.Create(ctx, image); err != nil {
		s.log.Warn().Err(err).
			Str("key", key).
			Uint("album_id", albumID).
			Uint("user_id", userID).
			Msg("image row not created, blob left orphaned")
		return nil, fmt.Errorf("create image: %w", err)
	}

	uc.FlashSuccess(msgPhotoUploaded)
	return image, nil
}

// GetImageBlob returns the blob stored under key and its content type.
// Unless ImageOwnerOnly is set, any logged-in user may read any key.
func (s *Service) GetImageBlob(ctx context.Context, uc usercontext.UserContext, key string) (*storage.Object, string, error) {
	userID, err := requireUser(uc)
	if err != nil {
		return nil, "", err
	}

	if s.imageOwnerOnly {
		if _, err := s.images.GetByKeyAndUserID(ctx, key, userID); err != nil {
			return nil, "", collaboratorErr("get image", err)
		}
	}

	obj, err := s.blobs.Get(ctx, key)
	if err != nil {
		return nil, "", collaboratorErr("get blob", err)
	}
	return obj, ContentTypeForKey(obj.Key), nil
}

// ImageAction dispatches a form intent for an image. Only "delete" is supported.
func (s *Service) ImageAction(ctx context.Context, uc usercontext.UserContext, key, intent string) (uint, error) {
	if _, err := requireUser(uc); err != nil {
		return 0, err
	}
	if intent != IntentDelete {
		return 0, fmt.Errorf("%w: the intent %s is not supported", ErrBadRequest, intent)
	}
	return s.DeleteImage(ctx, uc, key)
}

// DeleteImage removes an image row and its blob and returns the album id.
// The row goes first: if the blob delete then fails, the result is an orphaned
// blob, never a row pointing at a missing blob.
func (s *Service) DeleteImage(ctx context.Context, uc usercontext.UserContext, key string) (uint, error) {
	userID, err := requireUser(uc)
	if err != nil {
		return 0, err
	}

	image, err := s.images.GetByKey(ctx, key)
	if err != nil {
		return 0, collaboratorErr("get image", err)
	}

	if image.UserID != userID {
		s.log.Info().
			Str("key", key).
			Uint("owner_id", image.UserID).
			Uint("user_id", userID).
			Msg("image delete denied")
		return 0, ErrForbidden
	}

	if err := s.images.Delete(ctx, image); err != nil {
		return 0, collaboratorErr("delete image", err)
	}

	// the row is gone, finish the blob even if the client went away
	if err := s.blobs.Delete(context.WithoutCancel(ctx), image.Key); err != nil {
		s.log.Warn().Err(err).
			Str("key", image.Key).
			Uint("album_id", image.AlbumID).
			Msg("blob not deleted, left orphaned")
	}

	uc.FlashSuccess(msgPhotoDeleted)
	return image.AlbumID, nil
}
