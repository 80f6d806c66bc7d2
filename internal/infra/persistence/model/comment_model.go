package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MediaID   string    `gorm:"type:varchar(64);not null;index:comments_media_created_idx,priority:1"`
	MediaType string    `gorm:"type:varchar(16);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:comments_media_created_idx,priority:2"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// CommentWithAuthor is a comment row joined with its author's username.
type CommentWithAuthor struct {
	CommentModel
	Username string
}

// CommentReactionModel mirrors the 'comment_reactions' table. The primary key
// (comment_id, user_id) keeps a user in at most one of the like/dislike sets.
type CommentReactionModel struct {
	CommentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentReactionModel) TableName() string {
	return "comment_reactions"
}
