package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/babicastilho/todo-list-api/internal/infrastructure/logger"
	"github.com/babicastilho/todo-list-api/internal/ports"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService ports.CategoryService
	logger          *logger.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService ports.CategoryService, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// ListCategories returns all categories owned by the authenticated user.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	ownerID := ownerIDFromContext(c)

	categories, err := h.categoryService.List(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Errorw("List categories failed", "error", err, "owner_id", ownerID)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// CreateCategory creates a category for the authenticated user.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	ownerID := ownerIDFromContext(c)

	var req ports.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request format"})
	}

	category, err := h.categoryService.Create(c.Request().Context(), ownerID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CategoryResponse{Success: true, Category: category})
}

// GetCategory returns a single category.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	ownerID := ownerIDFromContext(c)

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "category not found"})
	}

	category, err := h.categoryService.Get(c.Request().Context(), ownerID, categoryID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, CategoryResponse{Success: true, Category: category})
}

// DeleteCategory removes a category. Tasks referencing it keep their now
// dangling categoryId.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	ownerID := ownerIDFromContext(c)

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "category not found"})
	}

	if err := h.categoryService.Delete(c.Request().Context(), ownerID, categoryID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
