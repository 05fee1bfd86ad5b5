package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simpletodo/api/internal/infrastructure/logger"
	"github.com/simpletodo/api/internal/ports"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authService ports.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService ports.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return NewError(http.StatusBadRequest, KindValidation, "invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	response, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Registration failed", "error", err, "username", req.Username)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, response)
}

// Login handles user login by username or email
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewError(http.StatusBadRequest, KindValidation, "invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("Login failed", "identifier", req.Username)
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, response)
}
