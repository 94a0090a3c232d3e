package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beacon/config"
)

func createTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	parser, err := NewJWTService(cfg)
	require.NoError(t, err)

	svc, ok := parser.(*jwtService)
	require.True(t, ok)

	return svc
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := createTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, []string{"admin"})
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc := createTestJWTService(t)
	token, err := svc.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	other := &jwtService{accessSecret: "different-secret", accessTTL: svc.accessTTL}

	_, err = other.ParseAccessToken(token)

	assert.Error(t, err)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := createTestJWTService(t)

	_, err := svc.ParseAccessToken("not-a-token")

	assert.Error(t, err)
}
