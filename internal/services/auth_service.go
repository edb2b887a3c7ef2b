package services

import (
	"context"

	"github.com/google/uuid"

	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

type AuthServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
	}
}

func (a *AuthService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, string, error) {

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, "", utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:             request.Name,
		Email:            request.Email,
		PasswordHash:     hashedPassword,
		Role:             db_models.RoleUser,
		Subscription:     db_models.SubscriptionFree,
		GenerationsLeft:  20,
		GenerationsTotal: 20,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(newUser.ID, newUser.Email, newUser.Name, string(newUser.Role))
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	return newUser, token, nil
}

// Login deliberately returns the same failure for an unknown email and a
// wrong password so responses cannot be used to enumerate accounts.
func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error) {

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if user == nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	return user, token, nil
}

func (a *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}
