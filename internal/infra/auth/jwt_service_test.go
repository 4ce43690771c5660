package auth

import (
	"testing"
	"time"

	"padpro/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.SecretKey.Refresh = secret

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := newTestConfig("test_secret_key_very_long_for_testing")

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "access", accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := newTestConfig("test_secret_key_very_long_for_testing")

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer, err := NewJWTService(newTestConfig("secret_one_very_long_for_testing"))
	assert.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret_two_very_long_for_testing"))
	assert.NoError(t, err)

	accessToken, _, err := signer.GenerateTokens(uuid.New())
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestConfig("")

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	cfg := newTestConfig("test_secret_key_very_long_for_testing")

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	duration := jwtService.GetRefreshTokenDuration()
	expectedDuration := time.Hour * 24 * 7 // 7 days
	assert.Equal(t, expectedDuration, duration)
}
