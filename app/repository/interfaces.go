package repository

import (
	"context"
	"time"

	"github.com/foxalbum/foxalbum/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

// AlbumRepository only offers lookups scoped to an owner. There is deliberately no
// GetByID: callers always know which user they act for.
type AlbumRepository interface {
	Create(ctx context.Context, album *models.Album) error
	ListByUserID(ctx context.Context, userID uint) ([]models.Album, error)
	GetByIDAndUserID(ctx context.Context, id, userID uint, withImages bool) (*models.Album, error)
}

// ImageRepository defines the interface for image-related database operations.
// Keys are globally unique, so GetByKey is the only unscoped lookup.
type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByKey(ctx context.Context, key string) (*models.Image, error)
	GetByKeyAndUserID(ctx context.Context, key string, userID uint) (*models.Image, error)
	Delete(ctx context.Context, image *models.Image) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User  UserRepository
	Album AlbumRepository
	Image ImageRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:  NewUserRepository(db),
		Album: NewAlbumRepository(db),
		Image: NewImageRepository(db),
	}
}
