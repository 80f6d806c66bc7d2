package context

import (
	"context"

	"reelhouse/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetCurrentUser attaches the authenticated user to both the echo context and the
// request's context.Context so handlers and use cases see the same identity.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
	c.SetRequest(c.Request().WithContext(WithCurrentUser(c.Request().Context(), user)))
}

// CurrentUser returns the user attached by the auth middleware, if any.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyCurrentUser)).(*entity.User)
	if ok && user != nil {
		return user, true
	}

	return CurrentUserFromContext(c.Request().Context())
}

// WithCurrentUser returns a new context carrying the user.
func WithCurrentUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyCurrentUser, user)
}

// CurrentUserFromContext extracts the authenticated user from context.Context.
func CurrentUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyCurrentUser).(*entity.User)

	return user, ok && user != nil
}
