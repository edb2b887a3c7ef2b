package request_models

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
