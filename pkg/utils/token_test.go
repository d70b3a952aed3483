package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, exp, err := NewAccessToken("test-secret", userID, "staff", 30)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, err := ParseAccessToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, _, err := NewAccessToken("right-secret", uuid.New(), "user", 30)
	require.NoError(t, err)

	_, err = ParseAccessToken("wrong-secret", token)
	assert.Error(t, err)
}

func TestAccessTokenExpired(t *testing.T) {
	token, _, err := NewAccessToken("test-secret", uuid.New(), "user", -1)
	require.NoError(t, err)

	_, err = ParseAccessToken("test-secret", token)
	assert.Error(t, err)
}

func TestAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("test-secret", "not-a-jwt")
	assert.Error(t, err)
}

func TestNewRefreshToken(t *testing.T) {
	first, exp, err := NewRefreshToken(14)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), exp, 5*time.Second)

	second, _, err := NewRefreshToken(14)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashRefreshTokenDeterministic(t *testing.T) {
	assert.Equal(t, HashRefreshToken("abc"), HashRefreshToken("abc"))
	assert.NotEqual(t, HashRefreshToken("abc"), HashRefreshToken("abd"))
	// Raw tokens never reach storage, only the hex digest does.
	assert.Len(t, HashRefreshToken("abc"), 64)
}
