package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"inkwell/internal/models/db_models"
	"inkwell/pkg/utils"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name    string
		auth    *AuthContext
		ownerID uuid.UUID
		want    error
	}{
		{
			name: "nil session",
			auth: nil, ownerID: owner,
			want: utils.ErrUnauthorized,
		},
		{
			name: "zero user id",
			auth: &AuthContext{Role: db_models.RoleUser}, ownerID: owner,
			want: utils.ErrUnauthorized,
		},
		{
			name: "owner allowed",
			auth: &AuthContext{UserID: owner, Role: db_models.RoleUser}, ownerID: owner,
			want: nil,
		},
		{
			name: "premium owner allowed",
			auth: &AuthContext{UserID: owner, Role: db_models.RolePremium}, ownerID: owner,
			want: nil,
		},
		{
			name: "non owner denied",
			auth: &AuthContext{UserID: stranger, Role: db_models.RoleUser}, ownerID: owner,
			want: utils.ErrForbidden,
		},
		{
			name: "admin bypasses ownership",
			auth: &AuthContext{UserID: stranger, Role: db_models.RoleAdmin}, ownerID: owner,
			want: nil,
		},
		{
			name: "unknown role denied even for owner",
			auth: &AuthContext{UserID: owner, Role: db_models.Role("superadmin")}, ownerID: owner,
			want: utils.ErrForbidden,
		},
		{
			name: "empty role denied",
			auth: &AuthContext{UserID: owner, Role: ""}, ownerID: owner,
			want: utils.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.auth, tt.ownerID)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	id := uuid.New()

	assert.ErrorIs(t, RequireRole(nil, db_models.RoleAdmin), utils.ErrUnauthorized)
	assert.ErrorIs(t, RequireRole(&AuthContext{UserID: id, Role: db_models.RoleUser}, db_models.RoleAdmin), utils.ErrForbidden)
	assert.ErrorIs(t, RequireRole(&AuthContext{UserID: id, Role: db_models.Role("superadmin")}, db_models.RoleAdmin), utils.ErrForbidden)
	assert.NoError(t, RequireRole(&AuthContext{UserID: id, Role: db_models.RoleAdmin}, db_models.RoleAdmin))
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, (*AuthContext)(nil).IsAdmin())
	assert.False(t, (&AuthContext{Role: db_models.RoleUser}).IsAdmin())
	assert.True(t, (&AuthContext{Role: db_models.RoleAdmin}).IsAdmin())
}
