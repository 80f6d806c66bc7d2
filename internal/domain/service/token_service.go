package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the session token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are stateless: nothing is stored server-side.
type TokenService interface {
	// Issue creates a signed token for the given user that expires after TTL.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature, algorithm and expiry and returns the embedded claims.
	// It does not check that the user still exists.
	Verify(tokenString string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
