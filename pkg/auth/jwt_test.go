package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	tokens := NewTokens("secret-a")

	token, err := tokens.Generate("64f1c2d3e4a5b6c7d8e9f0a1")
	require.NoError(t, err)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c2d3e4a5b6c7d8e9f0a1", claims.UserID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewTokens("secret-a").Generate("u1")
	require.NoError(t, err)

	_, err = NewTokens("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewTokens("secret-a").Validate("not.a.jwt")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
}
