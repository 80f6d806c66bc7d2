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

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, logger *slog.Logger) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite saves a title for the user. A second add of the same media id is rejected;
// the lookup here is a fast path and the store's unique constraint is authoritative.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID uuid.UUID, input *usecase.AddFavoriteInput) (*entity.Favorite, error) {
	mediaID := strings.TrimSpace(input.MediaID)
	if mediaID == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}
	if !input.MediaType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("mediaType must be movie or tv")
	}

	_, err := srv.favoriteRepo.FindByUserAndMedia(ctx, userID, mediaID)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Favorite already exists", slog.Any("userID", userID), slog.String("mediaID", mediaID))

		return nil, errors.WithStack(domainerrors.ErrFavoriteAlreadyExists)
	case !errors.Is(err, repository.ErrFavoriteNotFound):
		return nil, errors.Wrap(err, "failed to check existing favorite")
	}

	favorite := &entity.Favorite{
		UserID:     userID,
		MediaID:    mediaID,
		MediaType:  input.MediaType,
		Title:      strings.TrimSpace(input.Title),
		PosterPath: input.PosterPath,
	}
	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, errors.Wrap(err, "failed to create favorite")
	}

	srv.log(ctx).Info("Favorite added", slog.Any("userID", userID), slog.String("mediaID", mediaID))

	return favorite, nil
}

func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID uuid.UUID, mediaID string) (*entity.Favorite, error) {
	favorite, err := srv.favoriteRepo.FindByUserAndMedia(ctx, userID, mediaID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, errors.WithStack(domainerrors.ErrFavoriteNotFound)
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	if err := srv.favoriteRepo.DeleteByUserAndMedia(ctx, userID, mediaID); err != nil {
		// Lost a race with a concurrent delete of the same favorite.
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, errors.WithStack(domainerrors.ErrFavoriteNotFound)
		}

		return nil, errors.Wrap(err, "failed to delete favorite")
	}

	srv.log(ctx).Info("Favorite removed", slog.Any("userID", userID), slog.String("mediaID", mediaID))

	return favorite, nil
}
