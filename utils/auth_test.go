package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernhub/ecommerce-api/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPassword("correct horse battery", hash))
	assert.False(t, CheckPassword("wrong password", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestGenerateAndValidateToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "unit-test-secret")
	defer os.Unsetenv("JWT_SECRET")

	user := &models.User{
		Email: "alice@example.com",
		Role:  models.RoleUser,
	}
	user.ID = 42

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestValidateTokenRejectsTamperedSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "first-secret")
	user := &models.User{Email: "bob@example.com", Role: models.RoleAdmin}
	user.ID = 7

	token, err := GenerateToken(user)
	require.NoError(t, err)

	os.Setenv("JWT_SECRET", "second-secret")
	defer os.Unsetenv("JWT_SECRET")

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "unit-test-secret")
	defer os.Unsetenv("JWT_SECRET")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestGenerateResetToken(t *testing.T) {
	first, err := GenerateResetToken()
	require.NoError(t, err)
	second, err := GenerateResetToken()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	// 32 random bytes in unpadded base64url
	assert.Len(t, first, 43)
	assert.NotContains(t, first, "=")
}
