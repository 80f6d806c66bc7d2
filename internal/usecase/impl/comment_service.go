package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "reelhouse/internal/delivery/context"
	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"
	"reelhouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type commentService struct {
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo repository.CommentRepository, logger *slog.Logger) usecase.CommentUsecase {
	return &commentService{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddComment posts a comment as author. There is no duplicate check.
func (srv *commentService) AddComment(ctx context.Context, author *entity.User, input *usecase.AddCommentInput) (*entity.Comment, error) {
	if author == nil {
		return nil, errors.WithStack(domainerrors.ErrTokenMissing)
	}

	mediaID := strings.TrimSpace(input.MediaID)
	content := strings.TrimSpace(input.Content)
	if mediaID == "" || content == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}
	if !input.MediaType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("mediaType must be movie or tv")
	}

	comment := &entity.Comment{
		UserID:    author.ID,
		MediaID:   mediaID,
		MediaType: input.MediaType,
		Content:   content,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		srv.log(ctx).Error("Failed to save comment", slog.String("mediaID", mediaID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create comment")
	}
	comment.Username = author.Username

	srv.log(ctx).Info("Comment added", slog.Any("commentID", comment.ID), slog.String("mediaID", mediaID))

	return comment, nil
}

// ListComments returns the comments on a title, newest first.
func (srv *commentService) ListComments(ctx context.Context, mediaID string) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.ListByMedia(ctx, mediaID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

func (srv *commentService) DeleteComment(ctx context.Context, commentID, requesterID uuid.UUID) error {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return errors.WithStack(domainerrors.ErrCommentNotFound)
		}

		return errors.Wrap(err, "failed to find comment")
	}

	if !comment.IsAuthoredBy(requesterID) {
		srv.log(ctx).Warn("Comment delete forbidden", slog.Any("commentID", commentID), slog.Any("requesterID", requesterID))

		return errors.WithStack(domainerrors.ErrCommentForbidden)
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return errors.WithStack(domainerrors.ErrCommentNotFound)
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("commentID", commentID))

	return nil
}
