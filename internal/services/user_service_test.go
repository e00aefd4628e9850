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

type fakeUserRepo struct {
	byEmail map[string]*db_models.User
	byID    map[string]*db_models.User
	roles   map[string]string
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byEmail: map[string]*db_models.User{},
		byID:    map[string]*db_models.User{},
		roles:   map[string]string{},
	}
	for _, u := range users {
		repo.byEmail[u.Email] = u
		repo.byID[u.ID.String()] = u
	}
	return repo
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*db_models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	for _, u := range f.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *db_models.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	f.byID[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	f.roles[id.String()] = role
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func adminUser(t *testing.T) *db_models.User {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	return &db_models.User{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Name:         "Admin",
		Email:        "admin@yellbook.mn",
		PasswordHash: hash,
		Role:         db_models.RoleAdmin,
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	admin := adminUser(t)
	svc := NewUserService(newFakeUserRepo(admin))

	err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "Someone",
		Email:    admin.Email,
		Password: "pass1234",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestRegisterAssignsUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "Болд",
		Email:    "bold@example.mn",
		Password: "pass1234",
	})
	require.NoError(t, err)

	created := repo.byEmail["bold@example.mn"]
	require.NotNil(t, created)
	assert.Equal(t, db_models.RoleUser, created.Role)
	assert.NotEqual(t, "pass1234", created.PasswordHash)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(adminUser(t)))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "admin@yellbook.mn",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.mn",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginIssuesToken(t *testing.T) {
	admin := adminUser(t)
	svc := NewUserService(newFakeUserRepo(admin))

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    admin.Email,
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.UserID)
	assert.Equal(t, db_models.RoleAdmin, claims.Role)
}

func TestUpdateRoleRejectsInvalidRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.UpdateRole(context.Background(), uuid.NewString(), uuid.New(), "SUPERADMIN")
	assert.ErrorIs(t, err, utils.ErrInvalidRole)
}

func TestUpdateRoleRejectsSelfDemotion(t *testing.T) {
	admin := adminUser(t)
	svc := NewUserService(newFakeUserRepo(admin))

	err := svc.UpdateRole(context.Background(), admin.ID.String(), admin.ID, db_models.RoleUser)
	assert.ErrorIs(t, err, utils.ErrSelfDemotion)
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.UpdateRole(context.Background(), uuid.NewString(), uuid.New(), db_models.RoleAdmin)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestUpdateRolePromotesUser(t *testing.T) {
	admin := adminUser(t)
	target := &db_models.User{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Email:     "user@example.mn",
		Role:      db_models.RoleUser,
	}
	repo := newFakeUserRepo(admin, target)
	svc := NewUserService(repo)

	err := svc.UpdateRole(context.Background(), admin.ID.String(), target.ID, db_models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, repo.roles[target.ID.String()])
}
