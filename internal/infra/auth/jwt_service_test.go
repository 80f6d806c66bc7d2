package auth

import (
	"testing"
	"time"

	"reelhouse/config"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func newTestService(t *testing.T, ttl time.Duration) (*jwtService, *fakeClock) {
	t.Helper()

	clock := &fakeClock{current: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(testSecret, ttl, clock.now)
	require.NoError(t, err)

	return svc, clock
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, clock := newTestService(t, time.Hour)

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, clock.current.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, clock.current.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	ttl := 30 * time.Minute
	svc, clock := newTestService(t, ttl)
	issuedAt := clock.current

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	clock.current = issuedAt.Add(ttl - time.Second)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	clock.current = issuedAt.Add(ttl + time.Second)
	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc, clock := newTestService(t, time.Hour)
	userID := uuid.New()

	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(clock.current),
			ExpiresAt: jwt.NewNumericDate(clock.current.Add(time.Hour)),
		},
	}

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	otherAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpClaims := claims
	noExpClaims.ExpiresAt = nil
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noExpClaims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	mismatch := claims
	mismatch.Subject = uuid.NewString()
	mismatchToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mismatch).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{name: "different secret", token: otherKey},
		{name: "different algorithm", token: otherAlg},
		{name: "missing exp", token: noExp},
		{name: "alg none", token: unsigned},
		{name: "subject mismatch", token: mismatchToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Verify(tt.token)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
		})
	}
}

func TestNewJWTService(t *testing.T) {
	t.Run("empty secret", func(t *testing.T) {
		svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}})
		assert.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "jwt secret must be provided")
	})

	t.Run("missing ttl", func(t *testing.T) {
		cfg := &config.Config{SecretKey: config.SecretKeyConfig{Access: testSecret}}
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})

	t.Run("configured ttl", func(t *testing.T) {
		cfg := &config.Config{
			SecretKey: config.SecretKeyConfig{Access: testSecret},
			Auth:      &config.AuthConfig{TokenTTL: 24 * time.Hour},
		}
		svc, err := NewJWTService(cfg)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, svc.TTL())
	})
}
