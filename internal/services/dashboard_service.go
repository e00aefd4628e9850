package services

import (
	"context"
	"log"

	"yellbook/internal/models/response_models"
	"yellbook/internal/repositories"
	"yellbook/pkg/utils"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (response_models.DashboardStats, error)
}

type DashboardService struct {
	entryRepo    repositories.EntryRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	userRepo     repositories.UserRepository
	reviewRepo   repositories.ReviewRepository
}

func NewDashboardService(
	entryRepo repositories.EntryRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
) DashboardServiceInterface {
	return &DashboardService{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
		reviewRepo:   reviewRepo,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (response_models.DashboardStats, error) {
	var (
		stats response_models.DashboardStats
		err   error
	)

	if stats.Entries, err = s.entryRepo.Count(ctx); err != nil {
		log.Printf("Error counting entries: %v", err)
		return stats, utils.ErrDatabaseError
	}
	if stats.Categories, err = s.categoryRepo.Count(ctx); err != nil {
		log.Printf("Error counting categories: %v", err)
		return stats, utils.ErrDatabaseError
	}
	if stats.Tags, err = s.tagRepo.Count(ctx); err != nil {
		log.Printf("Error counting tags: %v", err)
		return stats, utils.ErrDatabaseError
	}
	if stats.Users, err = s.userRepo.Count(ctx); err != nil {
		log.Printf("Error counting users: %v", err)
		return stats, utils.ErrDatabaseError
	}
	if stats.Reviews, err = s.reviewRepo.Count(ctx); err != nil {
		log.Printf("Error counting reviews: %v", err)
		return stats, utils.ErrDatabaseError
	}

	return stats, nil
}
