package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	h2, err := HashPassword("Passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "each call must salt independently")
	assert.True(t, CheckPasswordHash("Passw0rd!", h1))
	assert.True(t, CheckPasswordHash("Passw0rd!", h2))
}

func TestCheckPasswordHash_RejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd!")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("passw0rd!", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordHash_MalformedHashIsJustAMismatch(t *testing.T) {
	assert.False(t, CheckPasswordHash("Passw0rd!", ""))
	assert.False(t, CheckPasswordHash("Passw0rd!", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("Passw0rd!", "$2a$10$garbage"))
}
