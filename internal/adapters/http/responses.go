package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/simpletodo/api/internal/domain/entities"
)

// Error kinds reported to callers. Machine-readable, never carrying store
// internals.
const (
	KindValidation         = "validation"
	KindUnauthorized       = "unauthorized"
	KindInvalidCredentials = "invalid_credentials"
	KindNotFound           = "not_found"
	KindConflict           = "conflict"
	KindInternal           = "internal"
)

// ErrorBody is the machine-readable error payload
type ErrorBody struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// ErrorResponse wraps every error reply
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Response envelopes

type TaskResponse struct {
	Message string         `json:"message"`
	Task    *entities.Task `json:"task"`
}

type TasksResponse struct {
	Tasks []*entities.Task `json:"tasks"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// NewError builds an echo error carrying a structured body
func NewError(code int, kind, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, ErrorResponse{Error: ErrorBody{Kind: kind, Message: message}})
}

// mapDomainError translates service-level errors into HTTP errors. Anything
// unrecognized surfaces as an internal error without store details.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, entities.ErrTaskNotFound):
		return NewError(http.StatusNotFound, KindNotFound, "task not found")
	case errors.Is(err, entities.ErrUserNotFound):
		return NewError(http.StatusNotFound, KindNotFound, "user not found")
	case errors.Is(err, entities.ErrUsernameTaken):
		return NewError(http.StatusConflict, KindConflict, "username is already taken")
	case errors.Is(err, entities.ErrEmailTaken):
		return NewError(http.StatusConflict, KindConflict, "email is already taken")
	case errors.Is(err, entities.ErrInvalidCredentials):
		return NewError(http.StatusUnauthorized, KindInvalidCredentials, "invalid username or password")
	case errors.Is(err, entities.ErrInvalidPriority):
		return NewError(http.StatusBadRequest, KindValidation, "priority must be one of low, medium, high")
	default:
		return NewError(http.StatusInternalServerError, KindInternal, "internal server error")
	}
}

// getUserIDFromContext extracts the authenticated user ID set by the auth
// middleware
func getUserIDFromContext(c echo.Context) uuid.UUID {
	user := c.Get("user")
	if user == nil {
		return uuid.Nil
	}

	if userStr, ok := user.(string); ok {
		userID, _ := uuid.Parse(userStr)
		return userID
	}

	return uuid.Nil
}
