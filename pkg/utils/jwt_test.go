package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestSecret(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-at-least-16-chars!!")
}

func TestCreateValidateRoundTrip(t *testing.T) {
	setTestSecret(t)
	id := uuid.New()

	token, err := CreateToken(id, "alice@example.com", "Alice", "user")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	setTestSecret(t)
	token, err := CreateToken(uuid.New(), "a@example.com", "A", "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-completely-different-secret!!!")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	setTestSecret(t)
	token, err := createToken(uuid.New(), "a@example.com", "A", "user", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	setTestSecret(t)
	for _, bad := range []string{"", "not-a-jwt", "aaaa.bbbb.cccc"} {
		_, err := ValidateToken(bad)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
