package collection_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"inkwell/internal/api/controllers"
	"inkwell/internal/repositories"
	"inkwell/internal/services"
)

var Module = fx.Provide(
	provideCollectionRepo, provideCollectionService, provideCollectionController)

func provideCollectionRepo(db *gorm.DB) repositories.CollectionRepository {
	return repositories.NewCollectionRepository(db)
}

func provideCollectionService(
	collectionRepo repositories.CollectionRepository,
	postRepo repositories.PostRepository,
) services.CollectionServiceInterface {
	return services.NewCollectionService(collectionRepo, postRepo)
}

func provideCollectionController(collectionService services.CollectionServiceInterface) *controllers.CollectionController {
	return controllers.NewCollectionController(collectionService)
}
