package postgres

import (
	"context"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"
	"reelhouse/internal/infra/persistence/model"
	"reelhouse/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type favoriteRepository struct {
	q *query.Query
}

// NewFavoriteRepository creates a GORM Gen backed repository.FavoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		q: query.Use(db),
	}
}

// Create inserts the favorite. The favorites_user_media_key constraint rejects a second
// row for the same (user_id, media_id), including under concurrent inserts.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}

	favoriteM := fromFavoriteDomain(favorite)
	if err := repo.q.FavoriteModel.WithContext(ctx).Create(favoriteM); err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrFavoriteAlreadyExists)
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

func (repo *favoriteRepository) FindByUserAndMedia(ctx context.Context, userID uuid.UUID, mediaID string) (*entity.Favorite, error) {
	f := repo.q.FavoriteModel
	favoriteM, err := f.WithContext(ctx).
		Where(f.UserID.Eq(userID), f.MediaID.Eq(mediaID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find favorite")
	}

	return toFavoriteDomain(favoriteM), nil
}

func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	f := repo.q.FavoriteModel
	favoriteMs, err := f.WithContext(ctx).
		Where(f.UserID.Eq(userID)).
		Order(f.CreatedAt, f.ID).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteMs))
	for _, favoriteM := range favoriteMs {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

func (repo *favoriteRepository) DeleteByUserAndMedia(ctx context.Context, userID uuid.UUID, mediaID string) error {
	f := repo.q.FavoriteModel
	result, err := f.WithContext(ctx).
		Where(f.UserID.Eq(userID), f.MediaID.Eq(mediaID)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	return &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		MediaID:    data.MediaID,
		MediaType:  entity.MediaType(data.MediaType),
		Title:      data.Title,
		PosterPath: data.PosterPath,
		CreatedAt:  data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	return &model.FavoriteModel{
		ID:         data.ID,
		UserID:     data.UserID,
		MediaID:    data.MediaID,
		MediaType:  data.MediaType.String(),
		Title:      data.Title,
		PosterPath: data.PosterPath,
		CreatedAt:  data.CreatedAt,
	}
}
