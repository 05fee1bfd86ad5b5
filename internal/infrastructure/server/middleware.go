package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	httpHandlers "github.com/simpletodo/api/internal/adapters/http"
	"github.com/simpletodo/api/internal/infrastructure/logger"
	"github.com/simpletodo/api/internal/ports"
)

// authMiddleware validates bearer tokens before any persistence access
func (s *Server) authMiddleware(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return httpHandlers.NewError(http.StatusUnauthorized, httpHandlers.KindUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return httpHandlers.NewError(http.StatusUnauthorized, httpHandlers.KindUnauthorized, "invalid authorization header format")
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				s.logger.Warn("Invalid token", "error", err, "ip", c.RealIP())
				return httpHandlers.NewError(http.StatusUnauthorized, httpHandlers.KindUnauthorized, "invalid or expired token")
			}

			// Set user identity in context
			c.Set("user", claims.UserID)
			c.Set("username", claims.Username)

			return next(c)
		}
	}
}

// customErrorHandler renders every error as the structured
// {"error": {kind, message}} body
func customErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		body := httpHandlers.ErrorResponse{
			Error: httpHandlers.ErrorBody{
				Kind:    httpHandlers.KindInternal,
				Message: "internal server error",
			},
		}

		var he *echo.HTTPError
		var verrs validator.ValidationErrors

		switch {
		case errors.As(err, &verrs):
			code = http.StatusBadRequest
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			body.Error = httpHandlers.ErrorBody{
				Kind:    httpHandlers.KindValidation,
				Message: fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", ")),
				Fields:  fields,
			}
		case errors.As(err, &he):
			code = he.Code
			if resp, ok := he.Message.(httpHandlers.ErrorResponse); ok {
				body = resp
			} else if msg, ok := he.Message.(string); ok {
				body.Error = httpHandlers.ErrorBody{
					Kind:    kindForStatus(code),
					Message: msg,
				}
			}
		}

		if code == http.StatusInternalServerError {
			logger.Error("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		if !c.Response().Committed {
			var writeErr error
			if c.Request().Method == echo.HEAD {
				writeErr = c.NoContent(code)
			} else {
				writeErr = c.JSON(code, body)
			}
			if writeErr != nil {
				logger.Error("Error sending response", "error", writeErr)
			}
		}
	}
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return httpHandlers.KindValidation
	case http.StatusUnauthorized:
		return httpHandlers.KindUnauthorized
	case http.StatusNotFound:
		return httpHandlers.KindNotFound
	case http.StatusConflict:
		return httpHandlers.KindConflict
	default:
		return httpHandlers.KindInternal
	}
}
