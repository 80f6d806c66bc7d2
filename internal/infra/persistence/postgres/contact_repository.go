package postgres

import (
	"context"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"
	"reelhouse/internal/infra/persistence/model"
	"reelhouse/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct {
	q *query.Query
}

// NewContactRepository creates a GORM Gen backed repository.ContactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		q: query.Use(db),
	}
}

func (repo *contactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	messageM := &model.ContactMessageModel{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
	if err := repo.q.ContactMessageModel.WithContext(ctx).Create(messageM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save contact message")
	}

	message.CreatedAt = messageM.CreatedAt

	return nil
}
