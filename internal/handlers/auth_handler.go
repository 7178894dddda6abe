package handlers

import (
	"log/slog"
	"net/http"

	"invoicing-dashboard/internal/dto"
	"invoicing-dashboard/internal/errors"
	"invoicing-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp handles user registration
//
// Method: POST /api/v1/auth/signup
//
// Business validation failures (password mismatch, registered email) are
// reported as a mutation result with field errors and a 422 status, matching
// the shape the dashboard forms render. Malformed bodies are rejected with
// VALIDATION_001.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req dto.SignUpRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.authService.SignUp(&req)
	if err != nil {
		return SendSystemError(c, err)
	}

	if !result.OK() {
		return c.JSON(http.StatusUnprocessableEntity, result)
	}

	return c.JSON(http.StatusCreated, result)
}

// Login handles user authentication
//
// Method: POST /api/v1/auth/login
//
// Success Response: 200 OK with a bearer access token.
// Error Responses:
//   - 400: Invalid request body
//   - 401: Invalid email or password (AUTH_001)
//   - 500: Internal server error
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			slog.Warn("Login rejected",
				"trace_id", getTraceID(c),
				"ip", getClientIP(c),
			)
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Me returns the authenticated user's profile
//
// Method: GET /api/v1/auth/me
// Authentication: Required
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	profile, err := h.authService.GetProfile(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			return SendError(c, errors.AuthNotAuthenticated)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}
