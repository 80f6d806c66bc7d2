package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a catalog title saved by a user. At most one exists per (UserID, MediaID).
type Favorite struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`  // Owner; only this user may list or remove the favorite.
	MediaID    string    `json:"mediaId"` // Opaque external catalog key.
	MediaType  MediaType `json:"mediaType"`
	Title      string    `json:"title"`
	PosterPath string    `json:"posterPath"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsOwnedBy reports whether the favorite belongs to the given user.
func (f *Favorite) IsOwnedBy(userID uuid.UUID) bool {
	return f != nil && f.UserID == userID
}
