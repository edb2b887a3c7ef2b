package response_models

import (
	"inkwell/internal/models/db_models"
	"inkwell/pkg/utils"
)

type UserResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Avatar           string `json:"avatar,omitempty"`
	Role             string `json:"role"`
	Subscription     string `json:"subscription"`
	GenerationsLeft  int    `json:"generationsLeft"`
	GenerationsTotal int    `json:"generationsTotal"`
	CreatedAt        string `json:"createdAt"`
}

func BuildUserResponse(u *db_models.User) *UserResponse {
	return &UserResponse{
		ID:               u.ID.String(),
		Name:             u.Name,
		Email:            u.Email,
		Avatar:           u.Avatar,
		Role:             string(u.Role),
		Subscription:     string(u.Subscription),
		GenerationsLeft:  u.GenerationsLeft,
		GenerationsTotal: u.GenerationsTotal,
		CreatedAt:        utils.FormatRFC3339(u.CreatedAt),
	}
}
