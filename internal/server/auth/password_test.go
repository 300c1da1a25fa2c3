package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword([]byte("secret123"))
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash, "hash must not contain the plaintext")

	assert.True(t, CheckPassword(hash, []byte("secret123")))
	assert.False(t, CheckPassword(hash, []byte("wrong")))
	assert.False(t, CheckPassword(hash, []byte("")))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, err := HashPassword([]byte("secret123"))
	require.NoError(t, err)
	h2, err := HashPassword([]byte("secret123"))
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "bcrypt must salt each hash")
}

func TestBurnPasswordCheck_DoesNotPanic(t *testing.T) {
	BurnPasswordCheck([]byte("anything"))
	BurnPasswordCheck(nil)
}
