// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"reelhouse/config"
	"reelhouse/internal/delivery/api/middleware"
	"reelhouse/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	FavoriteHandler *handler.FavoriteHandler
	CommentHandler  *handler.CommentHandler
	ContactHandler  *handler.ContactHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	favoriteHandler *handler.FavoriteHandler
	commentHandler  *handler.CommentHandler
	contactHandler  *handler.ContactHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		favoriteHandler: params.FavoriteHandler,
		commentHandler:  params.CommentHandler,
		contactHandler:  params.ContactHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticate := r.authMiddleware.Authenticate

	usersGroup := api.Group("/users")
	{
		credentials := r.credentialMiddleware()
		usersGroup.POST("/register", r.userHandler.Register, credentials...)
		usersGroup.POST("/login", r.userHandler.Login, credentials...)
		usersGroup.POST("/logout", r.userHandler.Logout)
		usersGroup.GET("/profile", r.userHandler.GetProfile, authenticate)
		usersGroup.POST("/profile", r.userHandler.GetProfile, authenticate)
	}

	favoritesGroup := api.Group("/favorites")
	favoritesGroup.Use(authenticate)
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.POST("", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:id", r.favoriteHandler.RemoveFavorite)
	}

	// GET and POST take a media id, DELETE takes a comment id.
	commentsGroup := api.Group("/comments")
	{
		commentsGroup.GET("/:id", r.commentHandler.ListComments)
		commentsGroup.POST("/:id", r.commentHandler.AddComment, authenticate)
		commentsGroup.DELETE("/:id", r.commentHandler.DeleteComment, authenticate)
	}

	api.POST("/contact", r.contactHandler.Submit)
}

// credentialMiddleware throttles login and registration per client IP when enabled.
func (r *router) credentialMiddleware() []echo.MiddlewareFunc {
	limit := r.config.Auth.RateLimit
	if limit == nil || !limit.Enabled || limit.Rate <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(limit.Rate),
		Burst: limit.Burst,
	})

	return []echo.MiddlewareFunc{
		echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
			Store: store,
			DenyHandler: func(_ echo.Context, _ string, _ error) error {
				return echo.NewHTTPError(http.StatusTooManyRequests)
			},
		}),
	}
}
