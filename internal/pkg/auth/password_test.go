package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret-password-1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret-password-1", hash)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password-1")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "secret-password-1"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("secret-password-1")
	require.NoError(t, err)

	second, err := HashPassword("secret-password-1")
	require.NoError(t, err)

	// bcrypt salts each hash
	assert.NotEqual(t, first, second)
}
