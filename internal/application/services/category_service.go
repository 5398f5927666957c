package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/babicastilho/todo-list-api/internal/domain/entities"
	"github.com/babicastilho/todo-list-api/internal/infrastructure/logger"
	"github.com/babicastilho/todo-list-api/internal/ports"
)

// CategoryService handles owner-scoped category operations. Categories carry
// no update path: they are created, read and deleted.
type CategoryService struct {
	categoryRepo ports.CategoryRepository
	logger       *logger.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo ports.CategoryRepository, logger *logger.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// List returns all categories owned by ownerID.
func (s *CategoryService) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Category, error) {
	return s.categoryRepo.ListByOwner(ctx, ownerID)
}

// Create persists a new category for ownerID.
func (s *CategoryService) Create(ctx context.Context, ownerID uuid.UUID, req ports.CreateCategoryRequest) (*entities.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, entities.NewValidationError("name", "name is required")
	}

	category := &entities.Category{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Infow("Category created", "category_id", category.ID, "owner_id", ownerID, "name", category.Name)

	return category, nil
}

// Get retrieves a single category owned by ownerID. A category owned by
// someone else surfaces as ErrCategoryNotFound, indistinguishable from a
// missing record.
func (s *CategoryService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entities.Category, error) {
	return s.categoryRepo.GetByID(ctx, ownerID, id)
}

// Delete removes the category without touching tasks that reference it;
// their categoryId is left dangling.
func (s *CategoryService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.logger.Infow("Category deleted", "category_id", id, "owner_id", ownerID)
	return nil
}
