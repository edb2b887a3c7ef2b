package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/pkg/utils"
)

func newTestAuthService(t *testing.T, repo *fakeUserRepo) AuthServiceInterface {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-at-least-16-chars!!")
	return NewAuthService(repo)
}

func TestSignUp_CreatesUserWithHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	user, token, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, token)
	assert.Equal(t, db_models.RoleUser, user.Role)
	assert.Equal(t, db_models.SubscriptionFree, user.Subscription)
	assert.Equal(t, 20, user.GenerationsLeft)

	// never the plaintext
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2"))
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "secret123"))
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	first, _, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	originalHash := first.PasswordHash

	_, _, err = svc.SignUp(context.Background(), request_models.SignUpRequest{
		Email:    "alice@example.com",
		Password: "different456",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	// no duplicate row, original hash untouched
	assert.Len(t, repo.users, 1)
	assert.Equal(t, originalHash, repo.users[first.ID].PasswordHash)
}

func TestLogin_UniformFailureForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	_, _, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	_, _, wrongErr := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	// responses must not distinguish the two cases
	assert.ErrorIs(t, unknownErr, utils.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, utils.ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	_, _, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "user", claims.Role)
}
