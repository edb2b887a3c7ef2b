package post_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"inkwell/internal/api/controllers"
	"inkwell/internal/repositories"
	"inkwell/internal/services"
)

var Module = fx.Provide(
	providePostRepo, provideSavedPostRepo, providePostService, providePostController)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func provideSavedPostRepo(db *gorm.DB) repositories.SavedPostRepository {
	return repositories.NewSavedPostRepository(db)
}

func providePostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	savedRepo repositories.SavedPostRepository,
	embedder services.Embedder,
) services.PostServiceInterface {
	return services.NewPostService(postRepo, userRepo, savedRepo, embedder)
}

func providePostController(postService services.PostServiceInterface) *controllers.PostController {
	return controllers.NewPostController(postService)
}
