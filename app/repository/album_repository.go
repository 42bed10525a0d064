package repository

import (
	"context"

	"github.com/foxalbum/foxalbum/app/models"
	"gorm.io/gorm"
)

const albumImageCountSelect = "albums.*, (SELECT COUNT(*) FROM images WHERE images.album_id = albums.id) AS image_count"

// albumRepository implements the AlbumRepository interface
type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository creates a new album repository instance
func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepository{db: db}
}

// Create creates a new album in the database
func (r *albumRepository) Create(ctx context.Context, album *models.Album) error {
	return r.db.WithContext(ctx).Create(album).Error
}

// ListByUserID returns the user's albums, newest first, with ImageCount filled in.
func (r *albumRepository) ListByUserID(ctx context.Context, userID uint) ([]models.Album, error) {
	albums := make([]models.Album, 0)
	err := r.db.WithContext(ctx).Model(&models.Album{}).
		Select(albumImageCountSelect).
		Where("albums.user_id = ?", userID).
		Order("albums.created_at DESC").
		Order("albums.id DESC").
		Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}

// GetByIDAndUserID loads one album in a single query filtered by id and owner.
// Returns gorm.ErrRecordNotFound for albums of other users.
func (r *albumRepository) GetByIDAndUserID(ctx context.Context, id, userID uint, withImages bool) (*models.Album, error) {
	var album models.Album
	query := r.db.WithContext(ctx).Where("albums.id = ? AND albums.user_id = ?", id, userID)
	if withImages {
		query = query.Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.created_at DESC").Order("images.id DESC")
		})
	}
	if err := query.First(&album).Error; err != nil {
		return nil, err
	}
	if withImages {
		album.ImageCount = int64(len(album.Images))
	}
	return &album, nil
}
