package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"yellbook/internal/models/db_models"
)

// EntryFilter mirrors the public listing query: substring search across the
// text fields, category slug equality, tag label substring, kind equality.
type EntryFilter struct {
	Search       string
	CategorySlug string
	Kind         string
	Tag          string
}

type EntryRepository interface {
	Create(ctx context.Context, entry *db_models.Entry) (uuid.UUID, error)
	Update(ctx context.Context, entry *db_models.Entry) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Entry, error)
	List(ctx context.Context, filter EntryFilter) ([]db_models.Entry, error)
	TextSearch(ctx context.Context, terms []string, limit int) ([]db_models.Entry, error)
	ListMissingEmbedding(ctx context.Context, limit int) ([]db_models.Entry, error)
	Count(ctx context.Context) (int64, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *db_models.Entry) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return uuid.Nil, err
	}
	return entry.ID, nil
}

func (r *entryRepository) Update(ctx context.Context, entry *db_models.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(entry).Association("Tags").Replace(entry.Tags); err != nil {
			return fmt.Errorf("failed to update entry tags: %w", err)
		}

		result := tx.Save(entry)
		if result.Error != nil {
			return fmt.Errorf("failed to update entry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Entry{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Read helpers return a nil model plus nil error when no rows are found.

func (r *entryRepository) GetByID(ctx context.Context, id string) (*db_models.Entry, error) {
	var entry db_models.Entry
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) List(ctx context.Context, filter EntryFilter) ([]db_models.Entry, error) {
	q := r.db.WithContext(ctx).
		Model(&db_models.Entry{}).
		Preload("Category").
		Preload("Tags")

	if filter.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = yellow_book_entries.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Tag != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM entry_tags et JOIN tags t ON t.id = et.tag_id WHERE et.entry_id = yellow_book_entries.id AND t.label ILIKE ?)",
			"%"+filter.Tag+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(
			"name ILIKE ? OR short_name ILIKE ? OR summary ILIKE ? OR description ILIKE ? OR street_address ILIKE ? OR district ILIKE ? OR province ILIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern, pattern)
	}

	var entries []db_models.Entry
	if err := q.Order("name asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// TextSearch is the substring fallback of the semantic search: any term
// matching name, summary or description qualifies. Rows come back in
// database order, not ranked.
func (r *entryRepository) TextSearch(ctx context.Context, terms []string, limit int) ([]db_models.Entry, error) {
	if len(terms) == 0 {
		return []db_models.Entry{}, nil
	}

	var (
		clauses []string
		args    []interface{}
	)
	for _, term := range terms {
		pattern := "%" + term + "%"
		clauses = append(clauses, "name ILIKE ? OR summary ILIKE ? OR description ILIKE ?")
		args = append(args, pattern, pattern, pattern)
	}

	var entries []db_models.Entry
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where(strings.Join(clauses, " OR "), args...).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) ListMissingEmbedding(ctx context.Context, limit int) ([]db_models.Entry, error) {
	var entries []db_models.Entry
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("id NOT IN (SELECT entry_id::uuid FROM entry_embeddings)").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Entry{}).Count(&count).Error
	return count, err
}
