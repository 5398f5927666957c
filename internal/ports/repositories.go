package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/babicastilho/todo-list-api/internal/domain/entities"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}

// CategoryRepository defines owner-scoped category data operations. Every
// read and mutation filters on the owner id inside the same statement, so a
// record owned by someone else is indistinguishable from a missing one.
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entities.Category, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Category, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TaskRepository defines owner-scoped task data operations. Replace performs
// a full-record conditional UPDATE matched on id and owner in one statement;
// it reports entities.ErrTaskNotFound when no row matched.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entities.Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	Replace(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
