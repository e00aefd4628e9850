package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"yellbook/internal/models/db_models"
	"yellbook/internal/models/request_models"
	"yellbook/internal/repositories"
	"yellbook/pkg/utils"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req request_models.CreateCategoryRequest) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (uuid.UUID, error) {
	existing, err := s.categoryRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		log.Printf("Error checking category slug: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return uuid.Nil, utils.ErrSlugTaken
	}

	category := &db_models.Category{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		log.Printf("Error creating category: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return category.ID, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req request_models.CreateCategoryRequest) error {
	category, err := s.categoryRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching category: %v", err)
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	if req.Slug != category.Slug {
		existing, err := s.categoryRepo.GetBySlug(ctx, req.Slug)
		if err != nil {
			log.Printf("Error checking category slug: %v", err)
			return utils.ErrDatabaseError
		}
		if existing != nil {
			return utils.ErrSlugTaken
		}
	}

	category.Slug = req.Slug
	category.Name = req.Name
	category.Description = req.Description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		log.Printf("Error updating category: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// DeleteCategory restricts deletion while entries still reference the
// category instead of cascading.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching category: %v", err)
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	count, err := s.categoryRepo.CountEntries(ctx, id)
	if err != nil {
		log.Printf("Error counting category entries: %v", err)
		return utils.ErrDatabaseError
	}
	if count > 0 {
		return utils.ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting category: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
