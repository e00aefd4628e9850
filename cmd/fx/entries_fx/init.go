package entries_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yellbook/internal/repositories"
	"yellbook/internal/services"
	"yellbook/pkg/cache"
)

var Module = fx.Provide(
	provideEntryRepo, provideEmbeddingRepo, provideEntryService)

func provideEntryRepo(db *gorm.DB) repositories.EntryRepository {
	return repositories.NewEntryRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.EntryEmbeddingRepository {
	return repositories.NewEntryEmbeddingRepository(db)
}

func provideEntryService(
	entryRepo repositories.EntryRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	embeddingRepo repositories.EntryEmbeddingRepository,
	cacheClient *cache.Client,
) services.EntryServiceInterface {
	return services.NewEntryService(entryRepo, categoryRepo, tagRepo, embeddingRepo, cacheClient)
}
