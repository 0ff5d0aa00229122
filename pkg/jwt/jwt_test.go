package jwt

import (
	"testing"

	"gamevault/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(ttlHours int) {
	config.AppConfig = &config.Config{
		JWTSecret:     "test-secret",
		TokenTTLHours: ttlHours,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(1)

	token, err := GenerateToken(42, "alice@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@x.com", claims.Email)
}

func TestExpiredTokenFails(t *testing.T) {
	setTestConfig(-1)
	token, err := GenerateToken(42, "alice@x.com")
	require.NoError(t, err)

	setTestConfig(1)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenFails(t *testing.T) {
	setTestConfig(1)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}

func TestTamperedTokenFails(t *testing.T) {
	setTestConfig(1)

	token, err := GenerateToken(42, "alice@x.com")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretFails(t *testing.T) {
	setTestConfig(1)
	token, err := GenerateToken(42, "alice@x.com")
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "another-secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
