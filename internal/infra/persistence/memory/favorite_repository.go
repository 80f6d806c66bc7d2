package memory

import (
	"context"
	"slices"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type favoriteRepository struct {
	store *Store
}

// NewFavoriteRepository creates an in-memory repository.FavoriteRepository.
func NewFavoriteRepository(store *Store) repository.FavoriteRepository {
	return &favoriteRepository{store: store}
}

func (repo *favoriteRepository) Create(_ context.Context, favorite *entity.Favorite) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	key := favoriteKey{userID: favorite.UserID, mediaID: favorite.MediaID}
	if _, exists := repo.store.favoriteIndex[key]; exists {
		return errors.WithStack(domainerrors.ErrFavoriteAlreadyExists)
	}

	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = repo.store.now()
	}

	stored := copyFavorite(favorite)
	repo.store.favorites = append(repo.store.favorites, stored)
	repo.store.favoriteIndex[key] = stored

	return nil
}

func (repo *favoriteRepository) FindByUserAndMedia(_ context.Context, userID uuid.UUID, mediaID string) (*entity.Favorite, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	favorite, ok := repo.store.favoriteIndex[favoriteKey{userID: userID, mediaID: mediaID}]
	if !ok {
		return nil, repository.ErrFavoriteNotFound
	}

	return copyFavorite(favorite), nil
}

// ListByUser returns the user's favorites in insertion order, which is creation order.
func (repo *favoriteRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	favorites := make([]*entity.Favorite, 0)
	for _, favorite := range repo.store.favorites {
		if favorite.IsOwnedBy(userID) {
			favorites = append(favorites, copyFavorite(favorite))
		}
	}

	return favorites, nil
}

func (repo *favoriteRepository) DeleteByUserAndMedia(_ context.Context, userID uuid.UUID, mediaID string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	key := favoriteKey{userID: userID, mediaID: mediaID}
	stored, ok := repo.store.favoriteIndex[key]
	if !ok {
		return repository.ErrFavoriteNotFound
	}

	delete(repo.store.favoriteIndex, key)
	repo.store.favorites = slices.DeleteFunc(repo.store.favorites, func(f *entity.Favorite) bool {
		return f == stored
	})

	return nil
}
