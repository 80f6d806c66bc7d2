package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. (user_id, media_id) is unique.
type FavoriteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:favorites_user_media_key,priority:1"`
	MediaID    string    `gorm:"type:varchar(64);not null;uniqueIndex:favorites_user_media_key,priority:2"`
	MediaType  string    `gorm:"type:varchar(16);not null"`
	Title      string    `gorm:"type:varchar(255);not null"`
	PosterPath string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
