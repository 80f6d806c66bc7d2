package handler

import (
	"reelhouse/internal/domain/entity"
	"reelhouse/internal/usecase"
)

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

func (r *RegisterRequest) toInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{Username: r.Username, Email: r.Email, Password: r.Password}
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) toInput() *usecase.LoginInput {
	return &usecase.LoginInput{Email: r.Email, Password: r.Password}
}

// AddFavoriteRequest is the body of POST /api/favorites.
type AddFavoriteRequest struct {
	MediaID    string `json:"mediaId" validate:"required,notblank,max=64"`
	MediaType  string `json:"mediaType" validate:"required,oneof=movie tv"`
	Title      string `json:"title" validate:"max=255"`
	PosterPath string `json:"posterPath" validate:"max=255"`
}

func (r *AddFavoriteRequest) toInput() *usecase.AddFavoriteInput {
	return &usecase.AddFavoriteInput{
		MediaID:    r.MediaID,
		MediaType:  entity.MediaType(r.MediaType),
		Title:      r.Title,
		PosterPath: r.PosterPath,
	}
}

// AddCommentRequest is the body of POST /api/comments/:id; the media id comes from the path.
type AddCommentRequest struct {
	MediaID   string `param:"id" json:"-" validate:"max=64"`
	MediaType string `json:"mediaType" validate:"required,oneof=movie tv"`
	Content   string `json:"content" validate:"required,notblank,max=2000"`
}

func (r *AddCommentRequest) toInput() *usecase.AddCommentInput {
	return &usecase.AddCommentInput{
		MediaID:   r.MediaID,
		MediaType: entity.MediaType(r.MediaType),
		Content:   r.Content,
	}
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}

func (r *ContactRequest) toInput() *usecase.ContactInput {
	return &usecase.ContactInput{Name: r.Name, Email: r.Email, Message: r.Message}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
