package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/models/db_models"
	"inkwell/pkg/utils"
)

func TestUpdateUserRole_ClosedEnumeration(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAdminService(&fakeAdminRepo{}, users)

	target := users.add(&db_models.User{
		Email: "target@example.com",
		Role:  db_models.RoleUser,
	})

	for _, bad := range []string{"superadmin", "root", "", "Admin"} {
		_, err := svc.UpdateUserRole(context.Background(), target.ID.String(), bad)
		assert.ErrorIs(t, err, utils.ErrInvalidRole, "role %q must be rejected", bad)
	}

	// stored role untouched by the rejected writes
	assert.Equal(t, db_models.RoleUser, users.users[target.ID].Role)

	updated, err := svc.UpdateUserRole(context.Background(), target.ID.String(), "premium")
	require.NoError(t, err)
	assert.Equal(t, "premium", updated.Role)
	assert.Equal(t, db_models.RolePremium, users.users[target.ID].Role)
}

func TestUpdateUserRole_UnknownUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAdminService(&fakeAdminRepo{}, users)

	_, err := svc.UpdateUserRole(context.Background(), "11111111-1111-1111-1111-111111111111", "admin")
	assert.ErrorIs(t, err, utils.ErrUserNotFound)

	_, err = svc.UpdateUserRole(context.Background(), "not-a-uuid", "admin")
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestStats_CountsPremiumUsers(t *testing.T) {
	adminRepo := &fakeAdminRepo{}
	users := newFakeUserRepo()
	svc := NewAdminService(adminRepo, users)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalUsers)
	assert.Equal(t, int64(0), stats.PremiumUsers)
}
