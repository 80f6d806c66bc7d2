package middleware

import (
	"log/slog"
	"strings"

	"reelhouse/config"
	deliverycontext "reelhouse/internal/delivery/context"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"
	"reelhouse/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the session token into a loaded user.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	userRepo   repository.UserRepository
	cookieName string
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
		cookieName: cfg.Auth.Cookie.Name,
		logger:     logger,
	}
}

// Authenticate rejects the request with 401 unless it carries a valid token for an existing user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return errors.WithStack(domainerrors.ErrTokenMissing)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrTokenInvalid)
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			// The token outlived its user.
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrTokenInvalid)
			}

			return errors.Wrap(err, "failed to load authenticated user")
		}

		deliverycontext.SetCurrentUser(c, user.Sanitized())

		return next(c)
	}
}

// extractToken reads the session cookie first and falls back to the bearer header.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(authHeader) > len(bearerPrefix) && strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(authHeader[len(bearerPrefix):])
	}

	return ""
}
