package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ReactionType distinguishes likes from dislikes on a comment.
type ReactionType string

const (
	// ReactionLike marks a user id in the comment's like set.
	ReactionLike ReactionType = "like"
	// ReactionDislike marks a user id in the comment's dislike set.
	ReactionDislike ReactionType = "dislike"
)

// Comment is a message a user posted on a catalog title.
// A user id appears in at most one of Likes or Dislikes.
type Comment struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`   // Author; only this user may delete the comment.
	Username  string      `json:"username"` // Author display name, joined on read.
	MediaID   string      `json:"mediaId"`
	MediaType MediaType   `json:"mediaType"`
	Content   string      `json:"content"`
	Likes     []uuid.UUID `json:"likes"`
	Dislikes  []uuid.UUID `json:"dislikes"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// IsAuthoredBy reports whether the comment was written by the given user.
func (c *Comment) IsAuthoredBy(userID uuid.UUID) bool {
	return c != nil && c.UserID == userID
}

// SetReactions fills Likes and Dislikes from per-user reactions.
// The map key is the reacting user, so each user lands in exactly one set.
func (c *Comment) SetReactions(reactions map[uuid.UUID]ReactionType) {
	c.Likes = make([]uuid.UUID, 0)
	c.Dislikes = make([]uuid.UUID, 0)

	for userID, kind := range reactions {
		switch kind {
		case ReactionLike:
			c.Likes = append(c.Likes, userID)
		case ReactionDislike:
			c.Dislikes = append(c.Dislikes, userID)
		}
	}

	sortIDs(c.Likes)
	sortIDs(c.Dislikes)
}

func sortIDs(ids []uuid.UUID) {
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
}
