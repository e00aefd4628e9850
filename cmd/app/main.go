package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yellbook/cmd/fx/ai_fx"
	"yellbook/cmd/fx/cache_fx"
	"yellbook/cmd/fx/categories_fx"
	"yellbook/cmd/fx/controllers_fx"
	"yellbook/cmd/fx/db_fx"
	"yellbook/cmd/fx/entries_fx"
	"yellbook/cmd/fx/registrations_fx"
	"yellbook/cmd/fx/reviews_fx"
	"yellbook/cmd/fx/search_fx"
	"yellbook/cmd/fx/tags_fx"
	"yellbook/cmd/fx/users_fx"
	"yellbook/internal/api/controllers"
	"yellbook/internal/infra"
	"yellbook/internal/models/db_models"
	"yellbook/pkg/cache"
	"yellbook/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		ai_fx.Module,
		entries_fx.Module,
		categories_fx.Module,
		tags_fx.Module,
		users_fx.Module,
		reviews_fx.Module,
		search_fx.Module,
		registrations_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, cacheClient *cache.Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cacheClient.Ping(ctx); err != nil && err != cache.ErrDisabled {
				log.Printf("Redis unreachable, serving uncached: %v", err)
			}
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			if err := cacheClient.Close(); err != nil {
				log.Printf("Error closing Redis client: %v", err)
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	entriesController *controllers.EntriesController,
	searchController *controllers.SearchController,
	categoriesController *controllers.CategoriesController,
	tagsController *controllers.TagsController,
	usersController *controllers.UsersController,
	reviewsController *controllers.ReviewsController,
	registrationsController *controllers.RegistrationsController,
	revalidateController *controllers.RevalidateController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		entriesController,
		searchController,
		categoriesController,
		tagsController,
		usersController,
		reviewsController,
		registrationsController,
		revalidateController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	entriesController *controllers.EntriesController,
	searchController *controllers.SearchController,
	categoriesController *controllers.CategoriesController,
	tagsController *controllers.TagsController,
	usersController *controllers.UsersController,
	reviewsController *controllers.ReviewsController,
	registrationsController *controllers.RegistrationsController,
	revalidateController *controllers.RevalidateController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	booksGroup := r.Group("/yellow-books")
	booksGroup.GET("", entriesController.ListEntries)
	booksGroup.GET("/categories", entriesController.ListCategories)
	booksGroup.GET("/:id", entriesController.GetEntryByID)

	reviewsGroup := r.Group("/reviews")
	reviewsGroup.POST("", reviewsController.CreateReview)
	reviewsGroup.GET("/:entryId", reviewsController.GetReviews)

	r.POST("/registrations", registrationsController.CreateRegistration)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", usersController.Register)
	authGroup.POST("/login", usersController.Login)

	apiGroup := r.Group("/api")
	apiGroup.POST("/ai/yellow-books/search", searchController.Search)
	apiGroup.DELETE("/ai/yellow-books/cache", searchController.ClearCache)
	apiGroup.POST("/revalidate", revalidateController.Revalidate)

	tagsGroup := r.Group("/tags")
	tagsGroup.GET("", tagsController.ListAllTags)

	// Admin session exchange stays outside the JWT group: it is the login
	// endpoint that issues the token.
	r.POST("/admin/sessions", registrationsController.CreateAdminSession)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware())
	adminGroup.Use(middleware.RoleMiddleware(db_models.RoleAdmin))

	adminGroup.POST("/businesses", entriesController.CreateEntry)
	adminGroup.PUT("/businesses/:id", entriesController.UpdateEntry)
	adminGroup.DELETE("/businesses/:id", entriesController.DeleteEntry)

	adminGroup.POST("/categories", categoriesController.CreateCategory)
	adminGroup.PUT("/categories/:id", categoriesController.UpdateCategory)
	adminGroup.DELETE("/categories/:id", categoriesController.DeleteCategory)

	adminGroup.POST("/tags", tagsController.CreateTag)
	adminGroup.DELETE("/tags/:id", tagsController.DeleteTag)

	adminGroup.GET("/users", usersController.ListUsers)
	adminGroup.POST("/users/:userId/role", usersController.UpdateRole)
	adminGroup.GET("/dashboard", usersController.Dashboard)

	adminGroup.GET("/registrations", registrationsController.ListRegistrations)
}
