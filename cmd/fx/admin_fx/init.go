package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"inkwell/internal/api/controllers"
	"inkwell/internal/repositories"
	"inkwell/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAdminService, provideAdminController)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(adminRepo repositories.AdminRepository, userRepo repositories.UserRepository) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, userRepo)
}

func provideAdminController(adminService services.AdminServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(adminService)
}
