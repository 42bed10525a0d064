package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Album belongs to exactly one user. ImageCount is computed by the listing query
// and never written.
type Album struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Description string    `gorm:"type:text;not null" json:"description" validate:"required"`
	Images      []Image   `gorm:"foreignKey:AlbumID" json:"images,omitempty"`
	ImageCount  int64     `gorm:"->;-:migration" json:"image_count"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (a *Album) Validate() error {
	v := validator.New()

	return v.Struct(a)
}
