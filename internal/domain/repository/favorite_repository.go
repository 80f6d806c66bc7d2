package repository

import (
	"context"
	"errors"

	"reelhouse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when no favorite matches the owner and media id.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository persists favorites. (UserID, MediaID) is unique at the store level;
// a violating Create returns domainerrors.ErrFavoriteAlreadyExists.
type FavoriteRepository interface {
	// Create persists a new favorite.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// FindByUserAndMedia retrieves the favorite owned by userID for mediaID.
	FindByUserAndMedia(ctx context.Context, userID uuid.UUID, mediaID string) (*entity.Favorite, error)

	// ListByUser returns all favorites owned by userID in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// DeleteByUserAndMedia removes the favorite owned by userID for mediaID.
	DeleteByUserAndMedia(ctx context.Context, userID uuid.UUID, mediaID string) error
}
