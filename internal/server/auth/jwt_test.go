package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	tokenString, err := GenerateToken("u-1", "alice@example.com", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ParseToken(tokenString, secret)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Username)
}

func TestGenerateToken_UniqueID(t *testing.T) {
	secret := []byte("test-secret")

	first, err := GenerateToken("u-1", "alice@example.com", secret, time.Hour)
	require.NoError(t, err)
	second, err := GenerateToken("u-1", "alice@example.com", secret, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	claimsFirst, err := ParseToken(first, secret)
	require.NoError(t, err)
	claimsSecond, err := ParseToken(second, secret)
	require.NoError(t, err)

	assert.NotEmpty(t, claimsFirst.ID)
	assert.NotEqual(t, claimsFirst.ID, claimsSecond.ID)
}

func TestParseToken_RejectsForeignSigningMethod(t *testing.T) {
	secret := []byte("test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:   "u-1",
		Username: "alice@example.com",
	})
	tokenString, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, secret)
	require.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateToken("u-1", "alice@example.com", []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, []byte("wrong"))
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	tokenString, err := GenerateToken("u-1", "alice@example.com", secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, secret)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired), "want ErrTokenExpired, got %v", err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", []byte("s"))
	require.Error(t, err)
}
