package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/simpletodo/api/internal/domain/entities"
)

type mockUserRepo struct {
	createFn               func(ctx context.Context, user *entities.User) error
	getByIDFn              func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn           func(ctx context.Context, email string) (*entities.User, error)
	getByUsernameFn        func(ctx context.Context, username string) (*entities.User, error)
	getByUsernameOrEmailFn func(ctx context.Context, identifier string) (*entities.User, error)
	deleteWithTasksFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, entities.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, entities.ErrUserNotFound
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, entities.ErrUserNotFound
}

func (m *mockUserRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error) {
	if m.getByUsernameOrEmailFn != nil {
		return m.getByUsernameOrEmailFn(ctx, identifier)
	}
	return nil, entities.ErrUserNotFound
}

func (m *mockUserRepo) DeleteWithTasks(ctx context.Context, id uuid.UUID) error {
	if m.deleteWithTasksFn != nil {
		return m.deleteWithTasksFn(ctx, id)
	}
	return nil
}

type mockTaskRepo struct {
	createFn           func(ctx context.Context, task *entities.Task) error
	getByIDAndOwnerFn  func(ctx context.Context, id int, ownerID uuid.UUID) (*entities.Task, error)
	listByOwnerFn      func(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	updateFn           func(ctx context.Context, task *entities.Task) error
	deleteByIDAndOwner func(ctx context.Context, id int, ownerID uuid.UUID) error
}

func (m *mockTaskRepo) Create(ctx context.Context, task *entities.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskRepo) GetByIDAndOwner(ctx context.Context, id int, ownerID uuid.UUID) (*entities.Task, error) {
	if m.getByIDAndOwnerFn != nil {
		return m.getByIDAndOwnerFn(ctx, id, ownerID)
	}
	return nil, entities.ErrTaskNotFound
}

func (m *mockTaskRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTaskRepo) Update(ctx context.Context, task *entities.Task) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskRepo) DeleteByIDAndOwner(ctx context.Context, id int, ownerID uuid.UUID) error {
	if m.deleteByIDAndOwner != nil {
		return m.deleteByIDAndOwner(ctx, id, ownerID)
	}
	return nil
}
