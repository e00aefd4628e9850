package controllers_fx

import (
	"go.uber.org/fx"
	"yellbook/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewEntriesController),
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewCategoriesController),
	fx.Provide(controllers.NewTagsController),
	fx.Provide(controllers.NewUsersController),
	fx.Provide(controllers.NewReviewsController),
	fx.Provide(controllers.NewRegistrationsController),
	fx.Provide(controllers.NewRevalidateController))
