package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "reelhouse/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactBody struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	handler := NewErrorMiddleware(newDiscardLogger())

	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	validationErr := v.Struct(&contactBody{Email: "nope"})
	require.Error(t, validationErr)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantLeak   string
	}{
		{
			name:       "domain error",
			err:        errors.Wrap(domainerrors.ErrCommentForbidden, "delete"),
			wantStatus: http.StatusForbidden,
			wantCode:   "COMMENT_FORBIDDEN",
		},
		{
			name:       "domain error with details",
			err:        domainerrors.ErrValidationFailed.WithDetails("mediaType must be movie or tv"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "validation errors",
			err:        errors.WithStack(validationErr),
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_FIELDS",
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "database error is generic",
			err:        domainerrors.NewDatabaseExecuteError(errors.New(`duplicate key value violates "users_email_key"`), "insert"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
			wantLeak:   "users_email_key",
		},
		{
			name:       "untyped error",
			err:        errors.New("$2a$10$abcdefghijk"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLeak:   "$2a$10$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			handler.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			require.NotEmpty(t, env.Errors)
			assert.Equal(t, tt.wantCode, env.Errors[0].Code)
			assert.Nil(t, env.Data)
			if tt.wantLeak != "" {
				assert.NotContains(t, rec.Body.String(), tt.wantLeak)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(v.Struct(&contactBody{Email: "nope"}), &verrs))

	infos := fieldErrors(verrs)
	require.Len(t, infos, 2)
	assert.Equal(t, "name", infos[0].Field)
	assert.Equal(t, "MISSING_FIELDS", infos[0].Code)
	assert.Equal(t, "email", infos[1].Field)
	assert.Equal(t, "VALIDATION_FAILED", infos[1].Code)
}
