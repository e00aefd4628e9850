package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"yellbook/internal/models/db_models"
	"yellbook/internal/models/request_models"
	"yellbook/internal/models/response_models"
	"yellbook/internal/repositories"
	"yellbook/pkg/utils"
)

type UserServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	ListUsers(ctx context.Context) ([]response_models.User, error)
	UpdateRole(ctx context.Context, actorID string, userID uuid.UUID, role string) error
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Register(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Error checking email: %v", err)
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         db_models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Printf("Error creating user: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *UserService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]response_models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.User, 0, len(users))
	for _, user := range users {
		responses = append(responses, response_models.User{
			ID:        user.ID.String(),
			Name:      user.Name,
			Email:     user.Email,
			Image:     user.Image,
			Role:      user.Role,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// UpdateRole changes another user's role. Admins cannot demote their own
// account; everything else the admin gate already enforced.
func (s *UserService) UpdateRole(ctx context.Context, actorID string, userID uuid.UUID, role string) error {
	if !db_models.ValidRole(role) {
		return utils.ErrInvalidRole
	}

	if actorID == userID.String() && role == db_models.RoleUser {
		return utils.ErrSelfDemotion
	}

	user, err := s.userRepo.GetByID(ctx, userID.String())
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		log.Printf("Error updating role: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
