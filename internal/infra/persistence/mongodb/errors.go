package mongodb

import (
	"strings"

	"reelhouse/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

const duplicateKeyCode = 11000

// Unique index names, shared with EnsureIndexes.
const (
	usersUsernameIndex      = "users_username_key"
	usersEmailIndex         = "users_email_key"
	favoritesUserMediaIndex = "favorites_user_media_key"
)

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// duplicateIndex returns the unique index a duplicate key error violated. The server
// reports it as "... index: <name> dup key: { ... }"; the offending value follows the
// name and is never inspected.
func duplicateIndex(err error) string {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == duplicateKeyCode {
				return indexFromMessage(we.Message)
			}
		}
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == duplicateKeyCode {
		return indexFromMessage(cmdErr.Message)
	}

	return ""
}

func indexFromMessage(message string) string {
	_, rest, found := strings.Cut(message, "index: ")
	if !found {
		return ""
	}

	name, _, _ := strings.Cut(rest, " ")

	return name
}
