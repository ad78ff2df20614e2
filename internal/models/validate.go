package models

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/emeka-dev/catalog-backend/internal/apperrors"
)

var validate = validator.New()

// fieldMessages maps "<Entity>.<Field>.<tag>" to the message reported for
// that violation. Anything not listed falls back to a generic message.
var fieldMessages = map[string]string{
	"Category.Name.required":        "Category name is required",
	"Category.Name.max":             "Category name cannot exceed 100 characters",
	"Category.Slug.required":        "Category slug is required",
	"Category.Description.required": "Category description is required",
	"Category.Description.max":      "Description cannot exceed 500 characters",
	"Category.Image.required":       "Category image is required",

	"Product.Name.required":        "Product name is required",
	"Product.Name.max":             "Product name cannot exceed 200 characters",
	"Product.Slug.required":        "Product slug is required",
	"Product.Description.required": "Product description is required",
	"Product.Description.max":      "Description cannot exceed 2000 characters",
	"Product.Price.gte":            "Price cannot be negative",
	"Product.Images.required":      "Product must have between 1 and 10 images",
	"Product.Images.min":           "Product must have between 1 and 10 images",
	"Product.Images.max":           "Product must have between 1 and 10 images",
	"Product.Stock.gte":            "Stock cannot be negative",

	"Product.Size.required":   "Variant size is required",
	"Product.Size.oneof":      "Variant size must be one of Small, Medium, Large, XL, 250g, 500g, 1kg, 2kg",
	"Product.SKU.required":    "Variant SKU is required",
	"Product.User.required":   "Rating user is required",
	"Product.Rating.required": "Rating must be between 1 and 5",
	"Product.Rating.min":      "Rating must be between 1 and 5",
	"Product.Rating.max":      "Rating must be between 1 and 5",
	"Product.Review.max":      "Review cannot exceed 500 characters",
}

// inputEntity folds the update-input struct names onto their entity so both
// share one message table.
var inputEntity = map[string]string{
	"UpdateCategoryInput": "Category",
	"UpdateProductInput":  "Product",
}

func runValidators(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, fe := range verrs {
		entity := strings.SplitN(fe.StructNamespace(), ".", 2)[0]
		if mapped, ok := inputEntity[entity]; ok {
			entity = mapped
		}
		key := entity + "." + fe.StructField() + "." + fe.Tag()
		if msg, ok := fieldMessages[key]; ok {
			messages = append(messages, msg)
		} else {
			messages = append(messages, fe.Field()+" is invalid")
		}
	}
	return apperrors.NewValidationError(messages...)
}

// Validate enforces the per-field rules, returning a ValidationError that
// aggregates one message per offending field.
func (c *Category) Validate() error { return runValidators(c) }

func (p *Product) Validate() error { return runValidators(p) }

func (in *UpdateCategoryInput) Validate() error { return runValidators(in) }

func (in *UpdateProductInput) Validate() error { return runValidators(in) }
