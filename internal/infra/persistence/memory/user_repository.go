package memory

import (
	"context"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates an in-memory repository.UserRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	user, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user.Sanitized(), nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	id, ok := repo.store.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyUser(repo.store.users[id]), nil
}

func (repo *userRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	_, ok := repo.store.byUsername[username]

	return ok, nil
}

func (repo *userRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	_, ok := repo.store.byEmail[entity.NormalizeEmail(email)]

	return ok, nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	user.Email = entity.NormalizeEmail(user.Email)
	if _, taken := repo.store.byEmail[user.Email]; taken {
		return errors.WithStack(domainerrors.ErrEmailTaken)
	}
	if _, taken := repo.store.byUsername[user.Username]; taken {
		return errors.WithStack(domainerrors.ErrUsernameTaken)
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := repo.store.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	repo.store.users[user.ID] = copyUser(user)
	repo.store.byEmail[user.Email] = user.ID
	repo.store.byUsername[user.Username] = user.ID

	return nil
}
