package models

import "time"

// Image is the database half of an uploaded photo. Key is the object storage key of
// the blob; UserID is copied from the owning album for ownership checks without a join.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:storage_key;type:varchar(255);uniqueIndex;not null" json:"key"`
	AlbumID   uint      `gorm:"index;not null" json:"album_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
