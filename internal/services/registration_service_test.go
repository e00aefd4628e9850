package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yellbook/internal/models/request_models"
	"yellbook/pkg/filestore"
	"yellbook/pkg/utils"
)

func registrationService(t *testing.T) RegistrationServiceInterface {
	t.Helper()
	return NewRegistrationService(filestore.New(t.TempDir()))
}

func TestCreateAndListRegistrations(t *testing.T) {
	svc := registrationService(t)

	created, err := svc.CreateRegistration(request_models.CreateRegistrationRequest{
		Name:     "Хаан банк салбар",
		Category: "Банк",
		City:     "Улаанбаатар",
		Phone:    "7510-0000",
		Email:    "branch@example.mn",
		Message:  "Шинээр бүртгүүлэх хүсэлт",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	records, err := svc.ListRegistrations()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, created, records[0])
}

func TestListRegistrationsEmptyStore(t *testing.T) {
	svc := registrationService(t)

	records, err := svc.ListRegistrations()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateAdminSessionDefaultCredentials(t *testing.T) {
	svc := registrationService(t)

	session, err := svc.CreateAdminSession(request_models.AdminSessionRequest{
		Email:    "admin@yellbook.mn",
		Password: "changeme",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "admin@yellbook.mn", session.Email)

	// The session token is a random secret, not the record id.
	assert.Len(t, session.Token, 64)
	assert.NotEqual(t, session.ID, session.Token)
}

func TestCreateAdminSessionWrongPassword(t *testing.T) {
	svc := registrationService(t)

	_, err := svc.CreateAdminSession(request_models.AdminSessionRequest{
		Email:    "admin@yellbook.mn",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestCreateAdminSessionEnvOverride(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "boss@example.mn")
	t.Setenv("ADMIN_PASSWORD", "supersecret")
	svc := registrationService(t)

	_, err := svc.CreateAdminSession(request_models.AdminSessionRequest{
		Email:    "admin@yellbook.mn",
		Password: "changeme",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	session, err := svc.CreateAdminSession(request_models.AdminSessionRequest{
		Email:    "boss@example.mn",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "boss@example.mn", session.Email)
}
