package services

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"yellbook/internal/models/request_models"
	"yellbook/pkg/filestore"
	"yellbook/pkg/utils"
)

const (
	registrationsFile = "registrations.json"
	sessionsFile      = "admin-sessions.json"
)

// StoredRegistration is a pre-approval signup request. These stay in the
// flat-file store until an admin turns them into real entries.
type StoredRegistration struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type AdminSession struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type RegistrationServiceInterface interface {
	CreateRegistration(req request_models.CreateRegistrationRequest) (StoredRegistration, error)
	ListRegistrations() ([]StoredRegistration, error)
	CreateAdminSession(req request_models.AdminSessionRequest) (AdminSession, error)
}

type RegistrationService struct {
	store *filestore.Store
}

func NewRegistrationService(store *filestore.Store) RegistrationServiceInterface {
	return &RegistrationService{store: store}
}

func (s *RegistrationService) CreateRegistration(req request_models.CreateRegistrationRequest) (StoredRegistration, error) {
	record := StoredRegistration{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Category:  req.Category,
		City:      req.City,
		Phone:     req.Phone,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.store.Append(registrationsFile, record); err != nil {
		log.Printf("Error storing registration: %v", err)
		return StoredRegistration{}, utils.ErrDatabaseError
	}
	return record, nil
}

func (s *RegistrationService) ListRegistrations() ([]StoredRegistration, error) {
	var records []StoredRegistration
	if err := s.store.ReadAll(registrationsFile, &records); err != nil {
		log.Printf("Error reading registrations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return records, nil
}

// CreateAdminSession checks the configured admin credentials and appends a
// session token record on success.
func (s *RegistrationService) CreateAdminSession(req request_models.AdminSessionRequest) (AdminSession, error) {
	expectedEmail := os.Getenv("ADMIN_EMAIL")
	if expectedEmail == "" {
		expectedEmail = "admin@yellbook.mn"
	}
	expectedPassword := os.Getenv("ADMIN_PASSWORD")
	if expectedPassword == "" {
		expectedPassword = "changeme"
	}

	if req.Email != expectedEmail || req.Password != expectedPassword {
		return AdminSession{}, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		log.Printf("Error generating session token: %v", err)
		return AdminSession{}, utils.ErrDatabaseError
	}

	session := AdminSession{
		ID:        uuid.New().String(),
		Token:     token,
		Email:     req.Email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.Append(sessionsFile, session); err != nil {
		log.Printf("Error storing admin session: %v", err)
		return AdminSession{}, utils.ErrDatabaseError
	}
	return session, nil
}
