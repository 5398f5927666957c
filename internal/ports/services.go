package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/babicastilho/todo-list-api/internal/domain/entities"
)

// AuthService interface for account and token operations.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	VerifyToken(tokenString string) (uuid.UUID, error)
}

// CategoryService interface for owner-scoped category operations.
type CategoryService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Category, error)
	Create(ctx context.Context, ownerID uuid.UUID, req CreateCategoryRequest) (*entities.Category, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entities.Category, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TaskService interface for owner-scoped task operations. Update is a full
// replace: optional fields absent from the input are cleared on the record.
type TaskService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entities.Task, error)
	Create(ctx context.Context, ownerID uuid.UUID, input TaskInput) (*entities.Task, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input TaskInput) (*entities.Task, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Request/Response Types

// Auth related types
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string         `json:"token"`
	TokenType string         `json:"tokenType"`
	ExpiresIn int64          `json:"expiresIn"`
	User      *entities.User `json:"user"`
}

// CreateCategoryRequest carries the category creation payload. Name rules
// are enforced in the service so the rejection is field-tagged.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// TaskInput is the shared create/update payload. Empty strings and nil
// pointers mean "absent"; on update, absent optional fields clear the
// stored value rather than leaving it unchanged.
type TaskInput struct {
	Title       string  `json:"title"`
	Resume      string  `json:"resume"`
	Description *string `json:"description"`
	CategoryID  *string `json:"categoryId"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"dueDate"`
	DueTime     string  `json:"dueTime"`
}
