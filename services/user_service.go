package services

import (
	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/models"
	"github.com/commplan-simple/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	userRepo *repositories.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service instance
func NewUserService(db *gorm.DB, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(db),
		logger:   logger,
	}
}

// ListUsers retrieves all users
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id string) (models.User, error) {
	return s.userRepo.FindByID(id)
}

// CreateUser creates a new user
func (s *UserService) CreateUser(req dto.CreateUserRequest) (models.User, error) {
	user := models.User{
		Username: req.Username,
		Email:    req.Email,
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return models.User{}, err
	}
	return created, nil
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(id string, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := s.userRepo.Update(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser removes a user
func (s *UserService) DeleteUser(id string) error {
	return s.userRepo.Delete(id)
}
