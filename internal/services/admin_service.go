package services

import (
	"context"

	"github.com/google/uuid"

	"inkwell/internal/models/db_models"
	"inkwell/internal/models/response_models"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

type AdminServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.AdminUserResponse, error)
	Stats(ctx context.Context) (*response_models.AdminStatsResponse, error)
	UpdateUserRole(ctx context.Context, id string, role string) (*response_models.UserResponse, error)
}

type AdminService struct {
	adminRepo repositories.AdminRepository
	userRepo  repositories.UserRepository
}

func NewAdminService(adminRepo repositories.AdminRepository, userRepo repositories.UserRepository) AdminServiceInterface {
	return &AdminService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
	}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]response_models.AdminUserResponse, error) {
	rows, err := s.adminRepo.ListUsersWithPostCount(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AdminUserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, response_models.AdminUserResponse{
			ID:        rows[i].ID.String(),
			Name:      rows[i].Name,
			Email:     rows[i].Email,
			Role:      string(rows[i].Role),
			Status:    "active",
			CreatedAt: utils.FormatRFC3339(rows[i].CreatedAt),
			BlogCount: rows[i].PostCount,
		})
	}
	return out, nil
}

func (s *AdminService) Stats(ctx context.Context) (*response_models.AdminStatsResponse, error) {
	totalUsers, err := s.adminRepo.CountUsers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	premiumUsers, err := s.adminRepo.CountUsersBySubscription(ctx, db_models.SubscriptionPremium)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalBlogs, err := s.adminRepo.CountPosts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	blogsToday, err := s.adminRepo.CountPostsCreatedSince(ctx, utils.StartOfToday())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdminStatsResponse{
		TotalUsers:          totalUsers,
		PremiumUsers:        premiumUsers,
		TotalBlogs:          totalBlogs,
		BlogsGeneratedToday: blogsToday,
	}, nil
}

// UpdateUserRole only stores values from the closed role enumeration;
// anything else is a validation failure and the stored role is
// untouched.
func (s *AdminService) UpdateUserRole(ctx context.Context, id string, role string) (*response_models.UserResponse, error) {
	parsed, ok := db_models.ParseRole(role)
	if !ok {
		return nil, utils.ErrInvalidRole
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	user, err := s.userRepo.UpdateRole(ctx, userID, parsed)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	return response_models.BuildUserResponse(user), nil
}
