package search_fx

import (
	"go.uber.org/fx"
	"yellbook/internal/repositories"
	"yellbook/internal/services"
	"yellbook/pkg/cache"
	"yellbook/pkg/utils"
)

var Module = fx.Provide(provideSearchService)

func provideSearchService(
	embeddingRepo repositories.EntryEmbeddingRepository,
	entryRepo repositories.EntryRepository,
	embedder utils.EmbeddingClientInterface,
	cacheClient *cache.Client,
) services.SearchServiceInterface {
	return services.NewSearchService(embeddingRepo, entryRepo, embedder, cacheClient)
}
