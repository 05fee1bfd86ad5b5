package http

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/simpletodo/api/internal/domain/entities"
	"github.com/simpletodo/api/internal/ports"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

type mockAuthService struct {
	registerFn      func(ctx context.Context, req ports.RegisterRequest) (*ports.AuthResponse, error)
	loginFn         func(ctx context.Context, req ports.LoginRequest) (*ports.AuthResponse, error)
	validateTokenFn func(tokenString string) (*ports.Claims, error)
}

func (m *mockAuthService) Register(ctx context.Context, req ports.RegisterRequest) (*ports.AuthResponse, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, req ports.LoginRequest) (*ports.AuthResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return nil, nil
}

func (m *mockAuthService) ValidateToken(tokenString string) (*ports.Claims, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(tokenString)
	}
	return nil, nil
}

type mockTaskService struct {
	listFn   func(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	createFn func(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error)
	updateFn func(ctx context.Context, ownerID uuid.UUID, taskID int, req ports.UpdateTaskRequest) (*entities.Task, error)
	deleteFn func(ctx context.Context, ownerID uuid.UUID, taskID int) error
}

func (m *mockTaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, req)
	}
	return nil, nil
}

func (m *mockTaskService) UpdateTask(ctx context.Context, ownerID uuid.UUID, taskID int, req ports.UpdateTaskRequest) (*entities.Task, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, ownerID, taskID, req)
	}
	return nil, nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, ownerID uuid.UUID, taskID int) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, taskID)
	}
	return nil
}

type mockUserService struct {
	getUserFn       func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	deleteAccountFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, id)
	}
	return nil, entities.ErrUserNotFound
}

func (m *mockUserService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(ctx, id)
	}
	return nil
}
