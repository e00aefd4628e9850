package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"yellbook/internal/models/db_models"
	"yellbook/internal/models/response_models"
	"yellbook/internal/repositories"
	"yellbook/pkg/utils"
)

type TagServiceInterface interface {
	GetAllTags(ctx context.Context, page, pageSize int) ([]response_models.TagResponse, error)
	CreateTag(ctx context.Context, label string) (uuid.UUID, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type TagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagServiceInterface {
	return &TagService{tagRepo: tagRepo}
}

func (t *TagService) GetAllTags(ctx context.Context, page, pageSize int) ([]response_models.TagResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	tags, err := t.tagRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing tags: %v", err)
		return nil, utils.ErrDatabaseError
	}

	tagResponses := make([]response_models.TagResponse, 0, len(tags))
	for _, tag := range tags {
		tagResponses = append(tagResponses, response_models.TagResponse{
			ID:    tag.ID.String(),
			Label: tag.Label,
		})
	}
	return tagResponses, nil
}

func (t *TagService) CreateTag(ctx context.Context, label string) (uuid.UUID, error) {
	existing, err := t.tagRepo.GetByLabel(ctx, label)
	if err != nil {
		log.Printf("Error checking tag label: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return uuid.Nil, utils.ErrLabelTaken
	}

	tag := &db_models.Tag{Label: label}
	if err := t.tagRepo.Create(ctx, tag); err != nil {
		log.Printf("Error creating tag: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return tag.ID, nil
}

func (t *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if err := t.tagRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting tag: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
