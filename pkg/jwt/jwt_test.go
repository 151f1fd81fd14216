package jwt

import (
	"testing"
	"time"

	"hotel-listing/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, access time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, AccessExpiry: access, RefreshExpiry: time.Hour})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newService("secret", time.Minute)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "admin@example.com", []string{"Administrator"})
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
	assert.True(t, claims.HasRole("Administrator"))
	assert.False(t, claims.HasRole("User"))
}

func TestRefreshTokenType(t *testing.T) {
	svc := newService("secret", time.Minute)

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "u@example.com", []string{"User"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newService("secret", time.Minute).GenerateAccessToken(uuid.New(), "u@example.com", nil)
	require.NoError(t, err)

	_, err = newService("other", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newService("secret", -time.Minute)

	token, _, err := svc.GenerateAccessToken(uuid.New(), "u@example.com", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newService("secret", time.Minute).ValidateToken("not-a-token")
	assert.Error(t, err)
}
