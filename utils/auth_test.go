package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navswara/storefront/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2boogaloo")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2boogaloo", hash)

	assert.True(t, CheckPassword("hunter2boogaloo", hash))
	assert.False(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{Email: "token@example.com"}
	user.ID = 42

	token, err := GenerateToken(&user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	user := models.User{Email: "wrong@example.com"}
	user.ID = 7
	token, err := GenerateToken(&user)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateOTP()
		require.Len(t, otp, 6)
		for _, r := range otp {
			assert.GreaterOrEqual(t, r, '0')
			assert.LessOrEqual(t, r, '9')
		}
	}
}

func TestHashOTPStable(t *testing.T) {
	assert.Equal(t, HashOTP("123456"), HashOTP("123456"))
	assert.NotEqual(t, HashOTP("123456"), HashOTP("123457"))
	assert.Len(t, HashOTP("123456"), 64)
}
