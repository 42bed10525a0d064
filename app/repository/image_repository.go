package repository

import (
	"context"

	"github.com/foxalbum/foxalbum/app/models"
	"gorm.io/gorm"
)

// imageRepository implements the ImageRepository interface
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository instance
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// Create creates a new image in the database
func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// GetByKey retrieves an image by its storage key
func (r *imageRepository) GetByKey(ctx context.Context, key string) (*models.Image, error) {
	var image models.Image
	err := r.db.WithContext(ctx).Where("storage_key = ?", key).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// GetByKeyAndUserID retrieves an image by storage key, restricted to its owner
func (r *imageRepository) GetByKeyAndUserID(ctx context.Context, key string, userID uint) (*models.Image, error) {
	var image models.Image
	err := r.db.WithContext(ctx).Where("storage_key = ? AND user_id = ?", key, userID).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Delete hard deletes the image row. A row that is already gone yields
// gorm.ErrRecordNotFound so concurrent deletes are noticed.
func (r *imageRepository) Delete(ctx context.Context, image *models.Image) error {
	result := r.db.WithContext(ctx).Delete(&models.Image{}, image.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
