package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"yellbook/internal/models/db_models"
)

type EntryEmbeddingRepository interface {
	// ListCandidates returns rows carrying a stored vector, optionally
	// restricted to one category slug, capped at limit for cost control.
	ListCandidates(ctx context.Context, categorySlug string, limit int) ([]db_models.EntryEmbedding, error)
	Upsert(ctx context.Context, embedding *db_models.EntryEmbedding) error
	DeleteByEntryID(ctx context.Context, entryID string) error
}

type entryEmbeddingRepository struct {
	db *gorm.DB
}

func NewEntryEmbeddingRepository(db *gorm.DB) EntryEmbeddingRepository {
	return &entryEmbeddingRepository{db: db}
}

func (r *entryEmbeddingRepository) ListCandidates(ctx context.Context, categorySlug string, limit int) ([]db_models.EntryEmbedding, error) {
	q := r.db.WithContext(ctx).Where("embedding IS NOT NULL")
	if categorySlug != "" {
		q = q.Where("category_slug = ?", categorySlug)
	}

	var embeddings []db_models.EntryEmbedding
	if err := q.Limit(limit).Find(&embeddings).Error; err != nil {
		return nil, err
	}
	return embeddings, nil
}

func (r *entryEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.EntryEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_id"}},
			UpdateAll: true,
		}).
		Create(embedding).Error
}

func (r *entryEmbeddingRepository) DeleteByEntryID(ctx context.Context, entryID string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.EntryEmbedding{}, "entry_id = ?", entryID).Error
}
