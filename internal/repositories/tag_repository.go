package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"yellbook/internal/models/db_models"
)

type TagRepository interface {
	GetAll(ctx context.Context, page, pageSize int) ([]db_models.Tag, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Tag, error)
	GetByLabel(ctx context.Context, label string) (*db_models.Tag, error)
	Create(ctx context.Context, tag *db_models.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetAll(ctx context.Context, page, pageSize int) ([]db_models.Tag, error) {
	var tags []db_models.Tag
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("label asc").
		Offset(offset).
		Limit(pageSize).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Tag, error) {
	if len(ids) == 0 {
		return []db_models.Tag{}, nil
	}

	var tags []db_models.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) GetByLabel(ctx context.Context, label string) (*db_models.Tag, error) {
	var tag db_models.Tag
	err := r.db.WithContext(ctx).First(&tag, "label = ?", label).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *db_models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Tag{}, "id = ?", id).Error
}

func (r *tagRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Tag{}).Count(&count).Error
	return count, err
}
