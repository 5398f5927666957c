package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/babicastilho/todo-list-api/internal/domain/entities"
	"github.com/babicastilho/todo-list-api/internal/ports"
)

// CategoryRepositoryImpl implements the CategoryRepository interface
type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sqlx.DB) ports.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *entities.Category) error {
	query := `
		INSERT INTO categories (id, owner_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		category.ID, category.OwnerID, category.Name, category.Description,
	).Scan(&category.CreatedAt)

	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entities.Category, error) {
	query := `
		SELECT id, owner_id, name, description, created_at
		FROM categories
		WHERE id = $1 AND owner_id = $2`

	var category entities.Category
	err := r.db.GetContext(ctx, &category, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Category, error) {
	query := `
		SELECT id, owner_id, name, description, created_at
		FROM categories
		WHERE owner_id = $1
		ORDER BY created_at`

	categories := []*entities.Category{}
	err := r.db.SelectContext(ctx, &categories, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// Delete removes the category. Tasks referencing it keep their category_id;
// the schema carries no foreign key, so the reference simply dangles.
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrCategoryNotFound
	}

	return nil
}
