package response

import (
	"net/http"

	domainerrors "reelhouse/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the uniform body of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  []ErrorInfo `json:"errors"`
	Data    any         `json:"data"`
}

// ErrorInfo describes a single failure in an error response.
type ErrorInfo struct {
	Code    string `json:"code"`            // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Field   string `json:"field,omitempty"` // Offending request field, for validation failures
	Message string `json:"message"`         // User-friendly error message
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Errors:  []ErrorInfo{},
		Data:    data,
	})
}

// Error returns an error response carrying one or more error entries.
// The first entry's message doubles as the envelope message when none is given.
func Error(c echo.Context, statusCode int, message string, errs ...ErrorInfo) error {
	if errs == nil {
		errs = []ErrorInfo{}
	}
	if message == "" && len(errs) > 0 {
		message = errs[0].Message
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
		Data:    nil,
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, message, ErrorInfo{Code: errorCode, Message: message})
}

// ValidationFailed returns a 400 error listing every invalid field.
func ValidationFailed(c echo.Context, fields []ErrorInfo) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.Message(), fields...)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, message, ErrorInfo{Code: errorCode, Message: message})
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, message, ErrorInfo{Code: errorCode, Message: message})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, message, ErrorInfo{Code: errorCode, Message: message})
}

// AppError renders a domain error. Details are only exposed for 4xx validation-style errors.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	message := appErr.Message()
	info := ErrorInfo{Code: appErr.ErrorCode(), Message: message}

	status := appErr.HTTPCode()
	if status < http.StatusInternalServerError && status != http.StatusUnauthorized &&
		status != http.StatusForbidden && appErr.Details() != "" {
		info.Message = appErr.Details()
	}

	return Error(c, status, message, info)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
