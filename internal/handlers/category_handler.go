package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/emeka-dev/catalog-backend/internal/adapters/repository"
	"github.com/emeka-dev/catalog-backend/internal/apperrors"
	"github.com/emeka-dev/catalog-backend/internal/models"
	"github.com/emeka-dev/catalog-backend/utils"
)

type CategoryHandler struct {
	Repo repository.CategoryRepository
	Dev  bool
}

func NewCategoryHandler(repo repository.CategoryRepository, dev bool) *CategoryHandler {
	return &CategoryHandler{Repo: repo, Dev: dev}
}

// GetAllCategories handles GET /api/categories. Every category, natural
// storage order, no pagination.
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	categories, err := h.Repo.ListCategories(ctx)
	if err != nil {
		respondError(c, err, "Server error while fetching categories", h.Dev)
		return
	}

	c.JSON(http.StatusOK, utils.ListResponse(categories, len(categories)))
}

// CreateCategory handles POST /api/categories.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Category name is required"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	// Explicit pre-check; the unique index on name resolves the race
	// between this check and the insert.
	exists, err := h.Repo.CategoryNameExists(ctx, strings.TrimSpace(input.Name), primitive.NilObjectID)
	if err != nil {
		respondError(c, err, "Server error while creating category", h.Dev)
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Category with this name already exists"))
		return
	}

	now := time.Now()
	category := models.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	category.Normalize()
	if err := category.Validate(); err != nil {
		respondError(c, err, "Server error while creating category", h.Dev)
		return
	}

	created, err := h.Repo.CreateCategory(ctx, category)
	if err != nil {
		respondError(c, err, "Server error while creating category", h.Dev)
		return
	}

	c.JSON(http.StatusCreated, utils.SuccessResponse("Category created successfully", created))
}

// UpdateCategory handles PUT /api/categories/:id. Partial update; only
// supplied fields change.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid category ID"))
		return
	}

	var input models.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.Repo.GetCategoryByID(ctx, id)
	if err != nil {
		respondError(c, err, "Server error while updating category", h.Dev)
		return
	}

	input.Normalize()
	if input.Name != nil && *input.Name != existing.Name {
		exists, err := h.Repo.CategoryNameExists(ctx, *input.Name, id)
		if err != nil {
			respondError(c, err, "Server error while updating category", h.Dev)
			return
		}
		if exists {
			respondError(c, &apperrors.DuplicateError{
				Message: "Category with this name already exists",
				Field:   "name",
			}, "", h.Dev)
			return
		}
	}

	if err := input.Validate(); err != nil {
		respondError(c, err, "Server error while updating category", h.Dev)
		return
	}

	input.UpdatedAt = time.Now()
	updated, err := h.Repo.UpdateCategory(ctx, id, input)
	if err != nil {
		respondError(c, err, "Server error while updating category", h.Dev)
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Category updated successfully", updated))
}
