package auth

import (
	"testing"
	"time"

	"makan/config"
	"makan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"personal"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't have roles
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokensAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, []string{"business"})
	require.NoError(t, err)
	resetToken, err := jwtService.GenerateResetToken(userID, "fingerprint")
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(refreshToken, service.TokenTypeAccess)
	assert.Error(t, err)
	_, err = jwtService.ValidateToken(resetToken, service.TokenTypeAccess)
	assert.Error(t, err)
	_, err = jwtService.ValidateToken(accessToken, service.TokenTypeReset)
	assert.Error(t, err)

	claims, err := jwtService.ValidateToken(resetToken, service.TokenTypeReset)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "fingerprint", claims.Fingerprint)
	assert.Nil(t, claims.Roles)
}

func TestJWTService_ResetSecretFallbackDiffersFromAccess(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.SecretKey.Reset = ""

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	resetToken, err := jwtService.GenerateResetToken(uuid.New(), "fingerprint")
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(resetToken, service.TokenTypeAccess)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(accessToken, "id")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())

	cfg := newTestTokenConfig()
	cfg.Auth = &config.AuthConfig{RefreshTTL: 48 * time.Hour}
	jwtService, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	first := jwtService.HashToken("token-a")
	assert.Len(t, first, 64)
	assert.Equal(t, first, jwtService.HashToken("token-a"))
	assert.NotEqual(t, first, jwtService.HashToken("token-b"))
}
