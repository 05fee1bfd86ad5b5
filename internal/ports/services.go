package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/simpletodo/api/internal/domain/entities"
)

// AuthService interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// TaskService interface for task operations, always scoped to the
// authenticated owner
type TaskService interface {
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	CreateTask(ctx context.Context, ownerID uuid.UUID, req CreateTaskRequest) (*entities.Task, error)
	UpdateTask(ctx context.Context, ownerID uuid.UUID, taskID int, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, ownerID uuid.UUID, taskID int) error
}

// UserService interface for account operations
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// Request/Response Types

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest carries the login identifier in Username, which may be either
// a username or an email address.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User        *entities.User `json:"user"`
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
}

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type CreateTaskRequest struct {
	Text        string            `json:"text" validate:"required,max=255"`
	Description *string           `json:"description"`
	Priority    entities.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest uses pointer fields for present-vs-absent semantics: a
// nil field leaves the stored value untouched, a non-nil field replaces it.
type UpdateTaskRequest struct {
	Text        *string            `json:"text" validate:"omitempty,max=255"`
	Description *string            `json:"description"`
	Completed   *bool              `json:"completed"`
	Priority    *entities.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
}
