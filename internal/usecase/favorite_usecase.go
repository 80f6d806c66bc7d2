package usecase

import (
	"context"

	"reelhouse/internal/domain/entity"

	"github.com/google/uuid"
)

// AddFavoriteInput describes the catalog title to save.
type AddFavoriteInput struct {
	MediaID    string
	MediaType  entity.MediaType
	Title      string
	PosterPath string
}

// FavoriteUsecase manages a user's favorites. Every operation is scoped to the given user.
type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, userID uuid.UUID, input *AddFavoriteInput) (*entity.Favorite, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	// RemoveFavorite deletes the user's favorite for mediaID and returns the removed record.
	RemoveFavorite(ctx context.Context, userID uuid.UUID, mediaID string) (*entity.Favorite, error)
}
