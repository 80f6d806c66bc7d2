package handler

import (
	"net/http"

	"reelhouse/internal/delivery/api/response"
	"reelhouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler accepts messages from the public contact form.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

// NewContactHandler creates a new contact handler
func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.uc.Submit(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}
