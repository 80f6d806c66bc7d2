package mongodb

import (
	"context"
	"time"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type contactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository creates a MongoDB backed repository.ContactRepository.
func NewContactRepository(db *mongo.Database) repository.ContactRepository {
	return &contactRepository{coll: db.Collection(contactsCollection)}
}

func (repo *contactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	doc := contactDocument{
		ID:        message.ID.String(),
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save contact message")
	}

	return nil
}
