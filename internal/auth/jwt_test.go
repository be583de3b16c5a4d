// File: internal/auth/jwt_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret-key")

	token, err := GenerateJWT(42, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestGenerateJWTRejectsZeroUserID(t *testing.T) {
	_, err := GenerateJWT(0, []byte("test-secret-key"))
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, []byte("right-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(token, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", []byte("test-secret-key"))
	assert.Error(t, err)
}
