package mongodb

import (
	"time"

	"reelhouse/internal/domain/entity"

	"github.com/google/uuid"
)

// UUIDs are stored in their canonical string form.

type userDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type favoriteDocument struct {
	ID         string    `bson:"_id"`
	UserID     string    `bson:"user_id"`
	MediaID    string    `bson:"media_id"`
	MediaType  string    `bson:"media_type"`
	Title      string    `bson:"title"`
	PosterPath string    `bson:"poster_path"`
	CreatedAt  time.Time `bson:"created_at"`
}

type commentDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Username  string    `bson:"username,omitempty"` // filled by $lookup, never stored
	MediaID   string    `bson:"media_id"`
	MediaType string    `bson:"media_type"`
	Content   string    `bson:"content"`
	Likes     []string  `bson:"likes"`
	Dislikes  []string  `bson:"dislikes"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type contactDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

func toUserDomain(doc *userDocument) *entity.User {
	return &entity.User{
		ID:           parseUUID(doc.ID),
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func toFavoriteDomain(doc *favoriteDocument) *entity.Favorite {
	return &entity.Favorite{
		ID:         parseUUID(doc.ID),
		UserID:     parseUUID(doc.UserID),
		MediaID:    doc.MediaID,
		MediaType:  entity.MediaType(doc.MediaType),
		Title:      doc.Title,
		PosterPath: doc.PosterPath,
		CreatedAt:  doc.CreatedAt,
	}
}

func toCommentDomain(doc *commentDocument) *entity.Comment {
	comment := &entity.Comment{
		ID:        parseUUID(doc.ID),
		UserID:    parseUUID(doc.UserID),
		Username:  doc.Username,
		MediaID:   doc.MediaID,
		MediaType: entity.MediaType(doc.MediaType),
		Content:   doc.Content,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}

	reactions := make(map[uuid.UUID]entity.ReactionType, len(doc.Likes)+len(doc.Dislikes))
	for _, id := range doc.Dislikes {
		reactions[parseUUID(id)] = entity.ReactionDislike
	}
	// A like wins if a malformed document lists the same user in both arrays.
	for _, id := range doc.Likes {
		reactions[parseUUID(id)] = entity.ReactionLike
	}
	comment.SetReactions(reactions)

	return comment
}

func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
