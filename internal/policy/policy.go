package policy

import (
	"github.com/google/uuid"

	"inkwell/internal/models/db_models"
	"inkwell/pkg/utils"
)

// AuthContext is the verified session identity, resolved once per
// request from the incoming token and passed explicitly through
// handlers and services. Nothing reads identity from globals.
type AuthContext struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   db_models.Role
}

func (a *AuthContext) IsAdmin() bool {
	return a != nil && a.Role == db_models.RoleAdmin
}

// Authorize decides whether auth may mutate a resource owned by
// ownerID. Rules, in order: no session denies Unauthorized; a role
// outside the closed enumeration denies Forbidden (never a default
// low-privilege role); admin bypasses ownership; otherwise the caller
// must own the resource.
func Authorize(auth *AuthContext, ownerID uuid.UUID) error {
	if auth == nil || auth.UserID == uuid.Nil {
		return utils.ErrUnauthorized
	}
	if !auth.Role.Valid() {
		return utils.ErrForbidden
	}
	if auth.Role == db_models.RoleAdmin {
		return nil
	}
	if auth.UserID == ownerID {
		return nil
	}
	return utils.ErrForbidden
}

// RequireRole gates role-restricted actions such as the admin console.
func RequireRole(auth *AuthContext, role db_models.Role) error {
	if auth == nil || auth.UserID == uuid.Nil {
		return utils.ErrUnauthorized
	}
	if !auth.Role.Valid() || auth.Role != role {
		return utils.ErrForbidden
	}
	return nil
}
