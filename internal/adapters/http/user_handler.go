package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simpletodo/api/internal/infrastructure/logger"
	"github.com/simpletodo/api/internal/ports"
)

// UserHandler handles account requests for the authenticated caller
type UserHandler struct {
	userService ports.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService ports.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetCurrentUser returns the caller's account
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	userID := getUserIDFromContext(c)

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Get current user failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// DeleteCurrentUser removes the caller's account and every task it owns
func (h *UserHandler) DeleteCurrentUser(c echo.Context) error {
	userID := getUserIDFromContext(c)

	if err := h.userService.DeleteAccount(c.Request().Context(), userID); err != nil {
		h.logger.Error("Delete account failed", "error", err, "user_id", userID)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Account deleted"})
}
