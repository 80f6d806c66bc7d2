package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Sanitized(t *testing.T) {
	user := &User{ID: uuid.New(), Username: "alice", PasswordHash: "$2a$10$hash"}

	clean := user.Sanitized()

	require.NotNil(t, clean)
	assert.Empty(t, clean.PasswordHash)
	assert.Equal(t, "alice", clean.Username)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash, "original must be untouched")

	var nilUser *User
	assert.Nil(t, nilUser.Sanitized())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
	assert.Empty(t, NormalizeEmail("   "))
}

func TestMediaType_IsValid(t *testing.T) {
	assert.True(t, MediaTypeMovie.IsValid())
	assert.True(t, MediaTypeTV.IsValid())
	assert.False(t, MediaType("book").IsValid())
	assert.False(t, MediaType("").IsValid())
}

func TestComment_SetReactions(t *testing.T) {
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()

	var comment Comment
	comment.SetReactions(map[uuid.UUID]ReactionType{
		alice: ReactionLike,
		bob:   ReactionDislike,
		carol: ReactionLike,
	})

	assert.ElementsMatch(t, []uuid.UUID{alice, carol}, comment.Likes)
	assert.Equal(t, []uuid.UUID{bob}, comment.Dislikes)

	for _, id := range comment.Likes {
		assert.NotContains(t, comment.Dislikes, id)
	}

	comment.SetReactions(nil)
	assert.NotNil(t, comment.Likes)
	assert.Empty(t, comment.Likes)
	assert.Empty(t, comment.Dislikes)
}

func TestOwnership(t *testing.T) {
	owner := uuid.New()

	assert.True(t, (&Comment{UserID: owner}).IsAuthoredBy(owner))
	assert.False(t, (&Comment{UserID: owner}).IsAuthoredBy(uuid.New()))
	assert.True(t, (&Favorite{UserID: owner}).IsOwnedBy(owner))

	var missing *Comment
	assert.False(t, missing.IsAuthoredBy(owner))
}
