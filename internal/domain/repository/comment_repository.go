package repository

import (
	"context"
	"errors"

	"reelhouse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository persists comments and their reactions.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a single comment with its reactions.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByMedia returns the comments for mediaID, newest first, with the author's username joined in.
	ListByMedia(ctx context.Context, mediaID string) ([]*entity.Comment, error)

	// Delete removes a comment and its reactions.
	Delete(ctx context.Context, id uuid.UUID) error
}
