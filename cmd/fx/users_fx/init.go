package users_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yellbook/internal/repositories"
	"yellbook/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideUserService, provideDashboardService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}

func provideDashboardService(
	entryRepo repositories.EntryRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(entryRepo, categoryRepo, tagRepo, userRepo, reviewRepo)
}
