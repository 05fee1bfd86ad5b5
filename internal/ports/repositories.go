package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/simpletodo/api/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	// GetByUsernameOrEmail resolves the login identifier, which may be
	// either a username or an email address.
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error)
	// DeleteWithTasks removes the user and every task it owns within a
	// single transaction. No orphaned tasks may remain.
	DeleteWithTasks(ctx context.Context, id uuid.UUID) error
}

// TaskRepository defines the interface for task data operations.
// Lookups are always filtered by owner: a task belonging to another user is
// indistinguishable from a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByIDAndOwner(ctx context.Context, id int, ownerID uuid.UUID) (*entities.Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	DeleteByIDAndOwner(ctx context.Context, id int, ownerID uuid.UUID) error
}
