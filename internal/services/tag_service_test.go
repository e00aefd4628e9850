package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yellbook/internal/models/db_models"
	"yellbook/pkg/utils"
)

func TestGetAllTagsPagingBounds(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())
	ctx := context.Background()

	_, err := svc.GetAllTags(ctx, 0, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.GetAllTags(ctx, 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.GetAllTags(ctx, 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	tags, err := svc.GetAllTags(ctx, 1, 100)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestCreateTagRejectsTakenLabel(t *testing.T) {
	existing := &db_models.Tag{BaseModel: db_models.BaseModel{ID: uuid.New()}, Label: "24 цаг"}
	svc := NewTagService(newFakeTagRepo(existing))

	_, err := svc.CreateTag(context.Background(), "24 цаг")
	assert.ErrorIs(t, err, utils.ErrLabelTaken)
}

func TestCreateTag(t *testing.T) {
	repo := newFakeTagRepo()
	svc := NewTagService(repo)

	id, err := svc.CreateTag(context.Background(), "Яаралтай тусламж")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NotNil(t, repo.tags[id.String()])
}
