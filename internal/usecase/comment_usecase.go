package usecase

import (
	"context"

	"reelhouse/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCommentInput is a new comment on a catalog title.
type AddCommentInput struct {
	MediaID   string
	MediaType entity.MediaType
	Content   string
}

// CommentUsecase manages comments on catalog titles.
type CommentUsecase interface {
	AddComment(ctx context.Context, author *entity.User, input *AddCommentInput) (*entity.Comment, error)
	ListComments(ctx context.Context, mediaID string) ([]*entity.Comment, error)
	// DeleteComment removes a comment; only its author may do so.
	DeleteComment(ctx context.Context, commentID, requesterID uuid.UUID) error
}
