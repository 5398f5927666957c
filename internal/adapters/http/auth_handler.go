package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babicastilho/todo-list-api/internal/infrastructure/logger"
	"github.com/babicastilho/todo-list-api/internal/ports"
)

// AuthHandler handles authentication-related requests
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

// Register handles account creation and returns a signed token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request format"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	response, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		h.logger.Errorw("Register failed", "error", err, "email", req.Email)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, AuthSuccessResponse{Success: true, AuthResponse: response})
}

// Login authenticates a user and returns a signed token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request format"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, AuthSuccessResponse{Success: true, AuthResponse: response})
}

// Check confirms the presented bearer token is still valid. The auth
// middleware has already verified it by the time this handler runs.
func (h *AuthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
