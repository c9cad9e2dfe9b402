package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc := createTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, "user")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "user", accessClaims.Role)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_ValidateToken_RejectsTampering(t *testing.T) {
	svc := createTestJWTService(t)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken + "x")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsForeignSecret(t *testing.T) {
	svc := createTestJWTService(t)

	other := &config.Config{}
	other.SecretKey.Access = "some-other-access-secret"
	other.SecretKey.Refresh = "some-other-refresh-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	accessToken, _, err := otherSvc.GenerateTokens(uuid.New(), "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_SessionTokensAreOpaqueAndUnique(t *testing.T) {
	svc := createTestJWTService(t)

	first, err := svc.GenerateSessionToken()
	require.NoError(t, err)
	second, err := svc.GenerateSessionToken()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestJWTService_HashTokenIsDeterministic(t *testing.T) {
	svc := createTestJWTService(t)

	hash := svc.HashToken("raw-token")

	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.Equal(t, hash, svc.HashToken("raw-token"))
	assert.NotEqual(t, hash, svc.HashToken("other-token"))
}

func TestJWTService_ConfiguredDurationsOverrideDefaults(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{
		RefreshDuration: 48 * time.Hour,
		SessionDuration: 12 * time.Hour,
	}}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenDuration())
	assert.Equal(t, 12*time.Hour, svc.GetSessionDuration())
}
