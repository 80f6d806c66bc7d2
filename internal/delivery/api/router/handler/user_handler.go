// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"reelhouse/config"
	"reelhouse/internal/delivery/api/response"
	deliverycontext "reelhouse/internal/delivery/context"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/service"
	"reelhouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	cookie   config.CookieConfig
	logger   *slog.Logger
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	Usecase      usecase.UserUsecase
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:       params.Usecase,
		tokenSvc: params.TokenService,
		cookie:   params.Config.Auth.Cookie,
		logger:   params.Logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusCreated, AuthResponse{Token: output.Token, User: output.User}, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusOK, AuthResponse{Token: output.Token, User: output.User}, "Login successful")
}

// Logout clears the session cookie. Tokens are stateless, so nothing is revoked server side.
func (h *UserHandler) Logout(c echo.Context) error {
	cookie := h.baseCookie()
	cookie.Value = ""
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// GetProfile returns the authenticated user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	current, ok := deliverycontext.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenMissing)
	}

	user, err := h.uc.GetProfile(c.Request().Context(), current.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

func (h *UserHandler) setSessionCookie(c echo.Context, token string) {
	cookie := h.baseCookie()
	cookie.Value = token
	cookie.MaxAge = int(h.tokenSvc.TTL().Seconds())
	c.SetCookie(cookie)
}

func (h *UserHandler) baseCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Path:     "/",
		Domain:   h.cookie.Domain,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: parseSameSite(h.cookie.SameSite),
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
