package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yellbook/internal/models/db_models"
	"yellbook/internal/models/request_models"
	"yellbook/internal/repositories"
	"yellbook/pkg/utils"
)

type fakeEntryStore struct {
	entries map[string]*db_models.Entry
	created []*db_models.Entry
	deleted []string
}

func newFakeEntryStore(entries ...*db_models.Entry) *fakeEntryStore {
	store := &fakeEntryStore{entries: map[string]*db_models.Entry{}}
	for _, e := range entries {
		store.entries[e.ID.String()] = e
	}
	return store
}

func (f *fakeEntryStore) Create(ctx context.Context, entry *db_models.Entry) (uuid.UUID, error) {
	entry.ID = uuid.New()
	f.entries[entry.ID.String()] = entry
	f.created = append(f.created, entry)
	return entry.ID, nil
}

func (f *fakeEntryStore) Update(ctx context.Context, entry *db_models.Entry) error {
	f.entries[entry.ID.String()] = entry
	return nil
}

func (f *fakeEntryStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.entries, id.String())
	f.deleted = append(f.deleted, id.String())
	return nil
}

func (f *fakeEntryStore) GetByID(ctx context.Context, id string) (*db_models.Entry, error) {
	return f.entries[id], nil
}

func (f *fakeEntryStore) List(ctx context.Context, filter repositories.EntryFilter) ([]db_models.Entry, error) {
	var all []db_models.Entry
	for _, e := range f.entries {
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		all = append(all, *e)
	}
	return all, nil
}

func (f *fakeEntryStore) TextSearch(ctx context.Context, terms []string, limit int) ([]db_models.Entry, error) {
	return nil, nil
}

func (f *fakeEntryStore) ListMissingEmbedding(ctx context.Context, limit int) ([]db_models.Entry, error) {
	return nil, nil
}

func (f *fakeEntryStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.entries)), nil
}

type fakeTagRepo struct {
	tags map[string]*db_models.Tag
}

func newFakeTagRepo(tags ...*db_models.Tag) *fakeTagRepo {
	repo := &fakeTagRepo{tags: map[string]*db_models.Tag{}}
	for _, t := range tags {
		repo.tags[t.ID.String()] = t
	}
	return repo
}

func (f *fakeTagRepo) GetAll(ctx context.Context, page, pageSize int) ([]db_models.Tag, error) {
	var all []db_models.Tag
	for _, t := range f.tags {
		all = append(all, *t)
	}
	return all, nil
}

func (f *fakeTagRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Tag, error) {
	var found []db_models.Tag
	for _, id := range ids {
		if t, ok := f.tags[id.String()]; ok {
			found = append(found, *t)
		}
	}
	return found, nil
}

func (f *fakeTagRepo) GetByLabel(ctx context.Context, label string) (*db_models.Tag, error) {
	for _, t := range f.tags {
		if t.Label == label {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTagRepo) Create(ctx context.Context, tag *db_models.Tag) error {
	tag.ID = uuid.New()
	f.tags[tag.ID.String()] = tag
	return nil
}

func (f *fakeTagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.tags, id.String())
	return nil
}

func (f *fakeTagRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.tags)), nil
}

func validEntryRequest(categoryID string) request_models.CreateEntryRequest {
	return request_models.CreateEntryRequest{
		Name:          "Нэгдсэн эмнэлэг",
		Summary:       "Улсын хэмжээний эмнэлэг",
		StreetAddress: "Энх тайвны өргөн чөлөө 1",
		District:      "Сүхбаатар",
		Province:      "Улаанбаатар",
		Phone:         "7010-0000",
		Kind:          db_models.KindGovernment,
		CategoryID:    categoryID,
	}
}

func TestListEntriesRejectsUnknownKind(t *testing.T) {
	svc := NewEntryService(newFakeEntryStore(), newFakeCategoryRepo(), newFakeTagRepo(), &fakeEmbeddingRepo{}, nil)

	_, err := svc.ListEntries(context.Background(), request_models.ListEntriesQuery{OrganizationType: "CHARITY"})
	assert.ErrorIs(t, err, utils.ErrInvalidKind)
}

func TestGetEntryByIDUnknown(t *testing.T) {
	svc := NewEntryService(newFakeEntryStore(), newFakeCategoryRepo(), newFakeTagRepo(), &fakeEmbeddingRepo{}, nil)

	_, err := svc.GetEntryByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrEntryNotFound)
}

func TestGetEntryByIDContactOrder(t *testing.T) {
	cat := category("emneleg", "Эмнэлэг")
	entry := &db_models.Entry{
		BaseModel:      db_models.BaseModel{ID: uuid.New()},
		Name:           "Нэгдсэн эмнэлэг",
		Summary:        "Улсын хэмжээний эмнэлэг",
		StreetAddress:  "Энх тайвны өргөн чөлөө 1",
		District:       "Сүхбаатар",
		Province:       "Улаанбаатар",
		Phone:          "7010-0000",
		SecondaryPhone: "7010-0001",
		Email:          "info@hospital.mn",
		Website:        "https://hospital.mn",
		Kind:           db_models.KindGovernment,
		CategoryID:     cat.ID,
		Category:       *cat,
	}
	svc := NewEntryService(newFakeEntryStore(entry), newFakeCategoryRepo(cat), newFakeTagRepo(), &fakeEmbeddingRepo{}, nil)

	got, err := svc.GetEntryByID(context.Background(), entry.ID.String())
	require.NoError(t, err)

	require.Len(t, got.Contacts, 4)
	assert.Equal(t, "Утас", got.Contacts[0].Label)
	assert.Equal(t, "Нэмэлт утас", got.Contacts[1].Label)
	assert.Equal(t, "Имэйл", got.Contacts[2].Label)
	assert.Equal(t, "Вэб сайт", got.Contacts[3].Label)
	assert.Equal(t, "emneleg", got.Category.Slug)
	assert.Equal(t, db_models.KindGovernment, got.OrganizationType)
}

func TestCreateEntryUnknownCategory(t *testing.T) {
	svc := NewEntryService(newFakeEntryStore(), newFakeCategoryRepo(), newFakeTagRepo(), &fakeEmbeddingRepo{}, nil)

	_, err := svc.CreateEntry(context.Background(), validEntryRequest(uuid.NewString()))
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestCreateEntryInvalidKind(t *testing.T) {
	cat := category("emneleg", "Эмнэлэг")
	svc := NewEntryService(newFakeEntryStore(), newFakeCategoryRepo(cat), newFakeTagRepo(), &fakeEmbeddingRepo{}, nil)

	req := validEntryRequest(cat.ID.String())
	req.Kind = "COMPANY"
	_, err := svc.CreateEntry(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidKind)
}

func TestCreateEntryUnknownTag(t *testing.T) {
	cat := category("emneleg", "Эмнэлэг")
	svc := NewEntryService(newFakeEntryStore(), newFakeCategoryRepo(cat), newFakeTagRepo(), &fakeEmbeddingRepo{}, nil)

	req := validEntryRequest(cat.ID.String())
	req.TagIDs = []string{uuid.NewString()}
	_, err := svc.CreateEntry(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrTagNotFound)
}

func TestCreateEntryResolvesTags(t *testing.T) {
	cat := category("emneleg", "Эмнэлэг")
	tag := &db_models.Tag{BaseModel: db_models.BaseModel{ID: uuid.New()}, Label: "24 цаг"}
	store := newFakeEntryStore()
	svc := NewEntryService(store, newFakeCategoryRepo(cat), newFakeTagRepo(tag), &fakeEmbeddingRepo{}, nil)

	req := validEntryRequest(cat.ID.String())
	req.TagIDs = []string{tag.ID.String()}
	id, err := svc.CreateEntry(context.Background(), req)
	require.NoError(t, err)

	created := store.entries[id.String()]
	require.NotNil(t, created)
	require.Len(t, created.Tags, 1)
	assert.Equal(t, "24 цаг", created.Tags[0].Label)
}

func TestUpdateEntryDropsStaleEmbedding(t *testing.T) {
	cat := category("emneleg", "Эмнэлэг")
	entry := &db_models.Entry{
		BaseModel:     db_models.BaseModel{ID: uuid.New()},
		Name:          "Хуучин нэр",
		Summary:       "Хуучин тайлбар",
		StreetAddress: "Хаяг",
		District:      "Сүхбаатар",
		Province:      "Улаанбаатар",
		Phone:         "7010-0000",
		Kind:          db_models.KindBusiness,
		CategoryID:    cat.ID,
		Category:      *cat,
	}
	store := newFakeEntryStore(entry)
	embeddings := &fakeEmbeddingRepo{}
	svc := NewEntryService(store, newFakeCategoryRepo(cat), newFakeTagRepo(), embeddings, nil)

	req := request_models.UpdateEntryRequest{ID: entry.ID, CreateEntryRequest: validEntryRequest(cat.ID.String())}
	require.NoError(t, svc.UpdateEntry(context.Background(), req))

	assert.Equal(t, "Нэгдсэн эмнэлэг", store.entries[entry.ID.String()].Name)
	assert.Equal(t, []string{entry.ID.String()}, embeddings.deletedIDs)
}

func TestDeleteEntryUnknown(t *testing.T) {
	svc := NewEntryService(newFakeEntryStore(), newFakeCategoryRepo(), newFakeTagRepo(), &fakeEmbeddingRepo{}, nil)

	err := svc.DeleteEntry(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrEntryNotFound)
}

func TestRevalidateReportsTags(t *testing.T) {
	svc := NewEntryService(newFakeEntryStore(), newFakeCategoryRepo(), newFakeTagRepo(), &fakeEmbeddingRepo{}, nil)

	id := uuid.NewString()
	tags := svc.Revalidate(context.Background(), request_models.RevalidateRequest{
		ID:   id,
		Tags: []string{"custom-tag", ""},
	})
	assert.Equal(t, []string{"yellow-book:" + id, "yellow-books", "custom-tag"}, tags)
}

func TestRevalidateCollectionOptOut(t *testing.T) {
	svc := NewEntryService(newFakeEntryStore(), newFakeCategoryRepo(), newFakeTagRepo(), &fakeEmbeddingRepo{}, nil)

	off := false
	tags := svc.Revalidate(context.Background(), request_models.RevalidateRequest{Collection: &off})
	assert.Empty(t, tags)
}
