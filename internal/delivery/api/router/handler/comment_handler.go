package handler

import (
	"log/slog"
	"net/http"

	"reelhouse/internal/delivery/api/response"
	deliverycontext "reelhouse/internal/delivery/context"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler handles comments on catalog titles.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListComments handles GET /api/comments/:id, where id is the media id.
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.uc.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "Comments retrieved successfully")
}

// AddComment handles POST /api/comments/:id, where id is the media id.
func (h *CommentHandler) AddComment(c echo.Context) error {
	user, ok := deliverycontext.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenMissing)
	}

	var req AddCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.uc.AddComment(c.Request().Context(), user, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added successfully")
}

// DeleteComment handles DELETE /api/comments/:id, where id is the comment id.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	user, ok := deliverycontext.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenMissing)
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id cannot name an existing comment.
		return errors.WithStack(domainerrors.ErrCommentNotFound)
	}

	if err := h.uc.DeleteComment(c.Request().Context(), commentID, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
