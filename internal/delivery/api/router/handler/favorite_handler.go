package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"reelhouse/internal/delivery/api/response"
	deliverycontext "reelhouse/internal/delivery/context"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler handles the authenticated user's favorites list.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListFavorites handles GET /api/favorites
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	user, ok := deliverycontext.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenMissing)
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// AddFavorite handles POST /api/favorites
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	user, ok := deliverycontext.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenMissing)
	}

	var req AddFavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	favorite, err := h.uc.AddFavorite(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite added successfully")
}

// RemoveFavorite handles DELETE /api/favorites/:id, where id is the media id.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	user, ok := deliverycontext.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenMissing)
	}

	mediaID := strings.TrimSpace(c.Param("id"))
	if mediaID == "" {
		return errors.WithStack(domainerrors.ErrMissingFields)
	}

	removed, err := h.uc.RemoveFavorite(c.Request().Context(), user.ID, mediaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, removed, "Favorite removed successfully")
}
