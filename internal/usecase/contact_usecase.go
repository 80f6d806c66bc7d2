package usecase

import (
	"context"

	"reelhouse/internal/domain/entity"
)

// ContactInput is a message sent through the public contact form.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactUsecase stores contact form submissions.
type ContactUsecase interface {
	Submit(ctx context.Context, input *ContactInput) (*entity.ContactMessage, error)
}
