package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"yellbook/internal/infra"
	"yellbook/internal/models/db_models"
	"yellbook/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Enabling pgvector extension: %v", err)
	}

	err := db.AutoMigrate(
		&db_models.Category{},
		&db_models.Tag{},
		&db_models.Entry{},
		&db_models.Review{},
		&db_models.User{},
		&db_models.EntryEmbedding{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration complete")

	seedCategories(db)
	seedAdmin(db)
}

var categories = []db_models.Category{
	{Slug: "emneleg", Name: "Эмнэлэг", Description: "Эмнэлэг, эрүүл мэндийн байгууллагууд"},
	{Slug: "surguuli", Name: "Сургууль", Description: "Сургууль, боловсролын байгууллагууд"},
	{Slug: "zasag-zahirgaa", Name: "Засаг захиргаа", Description: "Төрийн болон орон нутгийн байгууллагууд"},
	{Slug: "restoran", Name: "Ресторан", Description: "Хоолны газар, ресторанууд"},
	{Slug: "uilchilgee", Name: "Үйлчилгээ", Description: "Бусад үйлчилгээний байгууллагууд"},
}

func seedCategories(db *gorm.DB) {
	for _, category := range categories {
		var existing db_models.Category
		err := db.Where("slug = ?", category.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("Looking up category %s: %v", category.Slug, err)
			continue
		}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("Seeding category %s: %v", category.Slug, err)
			continue
		}
		log.Printf("Seeded category %s", category.Slug)
	}
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@yellbook.mn"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	var existing db_models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("Admin user %s already exists", email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Looking up admin user: %v", err)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Hashing admin password: %v", err)
	}

	admin := db_models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         db_models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Seeding admin user: %v", err)
	}
	log.Printf("Seeded admin user %s", email)
}
