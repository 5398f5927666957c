package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/babicastilho/todo-list-api/internal/domain/entities"
	"github.com/babicastilho/todo-list-api/internal/ports"
)

// Every response carries a success boolean; failures add a human-readable
// message and, for validation failures, the offending field.

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type TaskResponse struct {
	Success bool           `json:"success"`
	Task    *entities.Task `json:"task"`
}

type TasksResponse struct {
	Success bool             `json:"success"`
	Tasks   []*entities.Task `json:"tasks"`
}

type CategoryResponse struct {
	Success  bool               `json:"success"`
	Category *entities.Category `json:"category"`
}

type CategoriesResponse struct {
	Success    bool                 `json:"success"`
	Categories []*entities.Category `json:"categories"`
}

type AuthSuccessResponse struct {
	Success bool `json:"success"`
	*ports.AuthResponse
}

// respondError maps a domain error onto the wire taxonomy: field-tagged 400
// for validation failures, 404 for absent-or-foreign records, 401 for bad
// credentials, 409 for registration conflicts, 500 for everything else.
func respondError(c echo.Context, err error) error {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: verr.Message, Field: verr.Field})
	case errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrCategoryNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
	case errors.Is(err, entities.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})
	case errors.Is(err, entities.ErrEmailTaken), errors.Is(err, entities.ErrUsernameTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
	}
}

// ownerIDFromContext returns the authenticated owner id stored by the auth
// middleware. uuid.Nil means the route was wired without the middleware.
func ownerIDFromContext(c echo.Context) uuid.UUID {
	ownerID, ok := c.Get("owner").(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return ownerID
}
