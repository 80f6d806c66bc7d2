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

	"github.com/pkg/errors"
)

type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repository.ContactRepository, logger *slog.Logger) usecase.ContactUsecase {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (srv *contactService) Submit(ctx context.Context, input *usecase.ContactInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   entity.NormalizeEmail(input.Email),
		Message: strings.TrimSpace(input.Message),
	}
	if message.Name == "" || message.Email == "" || message.Message == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}

	if err := srv.contactRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to save contact message")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Contact message received", slog.Any("messageID", message.ID))

	return message, nil
}
