package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/simpletodo/api/internal/domain/entities"
	"github.com/simpletodo/api/internal/infrastructure/logger"
	"github.com/simpletodo/api/internal/ports"
)

// UserService handles account-level operations
type UserService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo ports.UserRepository, logger *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Never expose the password hash
	user.PasswordHash = ""

	return user, nil
}

// DeleteAccount removes the account and cascades to every owned task
func (s *UserService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.DeleteWithTasks(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Account deleted", "user_id", id)

	return nil
}
