package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yellbook/internal/models/db_models"
	"yellbook/internal/models/request_models"
	"yellbook/pkg/utils"
)

type fakeCategoryRepo struct {
	categories map[string]*db_models.Category
	entryCount map[string]int64
	deleted    []string
}

func newFakeCategoryRepo(categories ...*db_models.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{
		categories: map[string]*db_models.Category{},
		entryCount: map[string]int64{},
	}
	for _, c := range categories {
		repo.categories[c.ID.String()] = c
	}
	return repo
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]db_models.Category, error) {
	var all []db_models.Category
	for _, c := range f.categories {
		all = append(all, *c)
	}
	return all, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*db_models.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*db_models.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *db_models.Category) error {
	category.ID = uuid.New()
	f.categories[category.ID.String()] = category
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *db_models.Category) error {
	f.categories[category.ID.String()] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.categories, id.String())
	f.deleted = append(f.deleted, id.String())
	return nil
}

func (f *fakeCategoryRepo) CountEntries(ctx context.Context, id uuid.UUID) (int64, error) {
	return f.entryCount[id.String()], nil
}

func (f *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

func category(slug, name string) *db_models.Category {
	return &db_models.Category{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Slug:      slug,
		Name:      name,
	}
}

func TestCreateCategoryRejectsTakenSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(category("emneleg", "Эмнэлэг")))

	_, err := svc.CreateCategory(context.Background(), request_models.CreateCategoryRequest{
		Slug: "emneleg",
		Name: "Өөр эмнэлэг",
	})
	assert.ErrorIs(t, err, utils.ErrSlugTaken)
}

func TestCreateCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	id, err := svc.CreateCategory(context.Background(), request_models.CreateCategoryRequest{
		Slug: "restoran",
		Name: "Ресторан",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NotNil(t, repo.categories[id.String()])
}

func TestUpdateCategoryUnknownID(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	err := svc.UpdateCategory(context.Background(), uuid.New(), request_models.CreateCategoryRequest{
		Slug: "restoran",
		Name: "Ресторан",
	})
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestUpdateCategorySlugCollision(t *testing.T) {
	first := category("emneleg", "Эмнэлэг")
	second := category("surguuli", "Сургууль")
	svc := NewCategoryService(newFakeCategoryRepo(first, second))

	err := svc.UpdateCategory(context.Background(), second.ID, request_models.CreateCategoryRequest{
		Slug: "emneleg",
		Name: "Сургууль",
	})
	assert.ErrorIs(t, err, utils.ErrSlugTaken)
}

func TestDeleteCategoryRestrictedWhileReferenced(t *testing.T) {
	cat := category("emneleg", "Эмнэлэг")
	repo := newFakeCategoryRepo(cat)
	repo.entryCount[cat.ID.String()] = 3
	svc := NewCategoryService(repo)

	err := svc.DeleteCategory(context.Background(), cat.ID)
	assert.ErrorIs(t, err, utils.ErrCategoryInUse)
	assert.Empty(t, repo.deleted)
}

func TestDeleteCategoryWithoutEntries(t *testing.T) {
	cat := category("restoran", "Ресторан")
	repo := newFakeCategoryRepo(cat)
	svc := NewCategoryService(repo)

	err := svc.DeleteCategory(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{cat.ID.String()}, repo.deleted)
}
