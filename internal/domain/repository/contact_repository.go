package repository

import (
	"context"

	"reelhouse/internal/domain/entity"
)

// ContactRepository persists messages sent through the contact form.
type ContactRepository interface {
	// Create persists a new contact message.
	Create(ctx context.Context, message *entity.ContactMessage) error
}
