package reviews_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yellbook/internal/repositories"
	"yellbook/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	entryRepo repositories.EntryRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, entryRepo)
}
