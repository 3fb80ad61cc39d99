package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)

	assert.NotEqual(t, "p1", hash, "stored credential must never equal the plaintext")
	assert.True(t, CheckPassword(hash, "p1"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// Per-call random salt means two hashes of the same input differ
	assert.NotEqual(t, first, second)
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "p1"))
	assert.False(t, CheckPassword("", "p1"))
}
