package memory

import (
	"context"

	"reelhouse/internal/domain/entity"
	"reelhouse/internal/domain/repository"

	"github.com/google/uuid"
)

type contactRepository struct {
	store *Store
}

// NewContactRepository creates an in-memory repository.ContactRepository.
func NewContactRepository(store *Store) repository.ContactRepository {
	return &contactRepository{store: store}
}

func (repo *contactRepository) Create(_ context.Context, message *entity.ContactMessage) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = repo.store.now()
	}

	clone := *message
	repo.store.contacts = append(repo.store.contacts, &clone)

	return nil
}
