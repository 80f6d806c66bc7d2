package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"reelhouse/internal/delivery/api/response"
	deliverycontext "reelhouse/internal/delivery/context"
	domainerrors "reelhouse/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		_ = response.AppError(c, appErr)

		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		_ = response.ValidationFailed(c, fieldErrors(validationErrs))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, message := httpErrorCode(httpErr)
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
			message = domainerrors.ErrInternalError.Message()
		}
		_ = response.Error(c, httpErr.Code, message, response.ErrorInfo{Code: code, Message: message})

		return
	}

	// Never echo the raw error: it may carry SQL, driver output or hashes.
	m.logUnhandled(c, err)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func httpErrorCode(httpErr *echo.HTTPError) (code, message string) {
	message = http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	switch httpErr.Code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode(), "Route not found"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", message
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE", "Request body is too large"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED", "Too many requests, please slow down"
	case http.StatusBadRequest:
		return domainerrors.ErrInvalidInput.ErrorCode(), domainerrors.ErrInvalidInput.Message()
	default:
		return "HTTP_ERROR", message
	}
}

func fieldErrors(validationErrs validator.ValidationErrors) []response.ErrorInfo {
	infos := make([]response.ErrorInfo, 0, len(validationErrs))
	for _, fe := range validationErrs {
		info := response.ErrorInfo{
			Code:  domainerrors.ErrValidationFailed.ErrorCode(),
			Field: fe.Field(),
		}

		switch fe.Tag() {
		case "required", "notblank":
			info.Code = domainerrors.ErrMissingFields.ErrorCode()
			info.Message = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			info.Message = fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "oneof":
			info.Message = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		case "min":
			info.Message = fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		case "max":
			info.Message = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		case "maxbytes":
			info.Message = fmt.Sprintf("%s must be at most %s bytes", fe.Field(), fe.Param())
		default:
			info.Message = fmt.Sprintf("%s is invalid", fe.Field())
		}

		infos = append(infos, info)
	}

	return infos
}
