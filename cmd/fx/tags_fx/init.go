package tags_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yellbook/internal/repositories"
	"yellbook/internal/services"
)

var Module = fx.Provide(
	provideTagRepo, provideTagService)

func provideTagRepo(db *gorm.DB) repositories.TagRepository {
	return repositories.NewTagRepository(db)
}

func provideTagService(tagRepo repositories.TagRepository) services.TagServiceInterface {
	return services.NewTagService(tagRepo)
}
