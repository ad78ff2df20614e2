package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/emeka-dev/catalog-backend/internal/adapters/repository"
	"github.com/emeka-dev/catalog-backend/internal/models"
	"github.com/emeka-dev/catalog-backend/utils"
)

type ProductHandler struct {
	Repo repository.ProductRepository
	Dev  bool
}

func NewProductHandler(repo repository.ProductRepository, dev bool) *ProductHandler {
	return &ProductHandler{Repo: repo, Dev: dev}
}

// CreateProduct handles POST /api/products.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input models.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	if missing := input.MissingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse(
			"Please provide all required fields: "+strings.Join(missing, ", ")))
		return
	}

	if len(input.Images) == 0 || len(input.Images) > 10 {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Product must have between 1 and 10 images"))
		return
	}

	// Only the reference's syntax is checked here; existence is not
	// verified before insert.
	categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(input.Category))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid category ID"))
		return
	}

	now := time.Now()
	product := models.Product{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       *input.Price,
		Images:      input.Images,
		Category:    categoryID,
		Variants:    input.Variants,
		Ratings:     input.Ratings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if product.Variants == nil {
		product.Variants = []models.Variant{}
	}
	if product.Ratings == nil {
		product.Ratings = []models.Rating{}
	}
	product.Normalize()
	if err := product.Validate(); err != nil {
		respondError(c, err, "Server error while creating product", h.Dev)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	created, err := h.Repo.CreateProduct(ctx, product)
	if err != nil {
		respondError(c, err, "Server error while creating product", h.Dev)
		return
	}

	c.JSON(http.StatusCreated, utils.SuccessResponse("Product created successfully", created))
}

// GetProductByID handles GET /api/products/:id. The category reference
// comes back expanded to its name, slug and description.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid product ID"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	product, err := h.Repo.GetProductDetail(ctx, id)
	if err != nil {
		respondError(c, err, "Server error while fetching product", h.Dev)
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("", product))
}

// UpdateProduct handles PUT /api/products/:id. Partial update with the
// field validators re-run on whatever was supplied.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid product ID"))
		return
	}

	var input models.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if _, err := h.Repo.GetProductByID(ctx, id); err != nil {
		respondError(c, err, "Server error while updating product", h.Dev)
		return
	}

	if input.Images != nil && (len(input.Images) == 0 || len(input.Images) > 10) {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Product must have between 1 and 10 images"))
		return
	}

	if input.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(*input.Category))
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid category ID"))
			return
		}
		input.CategoryID = &categoryID
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		respondError(c, err, "Server error while updating product", h.Dev)
		return
	}

	input.UpdatedAt = time.Now()
	if err := h.Repo.UpdateProduct(ctx, id, input); err != nil {
		respondError(c, err, "Server error while updating product", h.Dev)
		return
	}

	updated, err := h.Repo.GetProductDetail(ctx, id)
	if err != nil {
		respondError(c, err, "Server error while updating product", h.Dev)
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Product updated successfully", updated))
}

// DeleteProduct handles DELETE /api/products/:id, echoing the identifier
// back as confirmation.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	idParam := c.Param("id")
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid product ID"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Repo.DeleteProduct(ctx, id); err != nil {
		respondError(c, err, "Server error while deleting product", h.Dev)
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Product deleted successfully", gin.H{"id": idParam}))
}
