// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. Username and email are unique across all users.
type User struct {
	ID           uuid.UUID `json:"id"`       // The Global Unique Identifier (GUID) for the user.
	Username     string    `json:"username"` // Unique display name shown next to comments.
	Email        string    `json:"email"`    // Unique login identifier, stored lower-cased.
	PasswordHash string    `json:"-"`        // bcrypt hash; only populated by credential lookups.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Sanitized returns a copy of the user without credential material.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.PasswordHash = ""

	return &clone
}

// NormalizeEmail lower-cases and trims an email address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
