package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/emeka-dev/catalog-backend/internal/apperrors"
)

func validProduct() Product {
	return Product{
		Name:        "Arabica Beans",
		Slug:        "arabica-beans",
		Description: "Single-origin arabica beans",
		Price:       12.5,
		Images:      []string{"https://cdn.example.com/beans.jpg"},
		Category:    primitive.NewObjectID(),
		Stock:       5,
	}
}

func validCategory() Category {
	return Category{
		Name:        "Coffee",
		Slug:        "coffee",
		Description: "Whole beans and ground coffee",
		Image:       "https://cdn.example.com/coffee.jpg",
	}
}

func TestProductValidate(t *testing.T) {
	t.Run("valid product passes", func(t *testing.T) {
		p := validProduct()
		assert.NoError(t, p.Validate())
	})

	t.Run("name over 200 characters", func(t *testing.T) {
		p := validProduct()
		p.Name = strings.Repeat("x", 201)
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Product name cannot exceed 200 characters")
	})

	t.Run("multiple failures aggregate into one message", func(t *testing.T) {
		p := validProduct()
		p.Description = ""
		p.Price = -1
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "Product description is required")
		assert.Contains(t, err.Error(), "Price cannot be negative")
	})

	t.Run("images bounds", func(t *testing.T) {
		p := validProduct()
		p.Images = nil
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Product must have between 1 and 10 images")

		p = validProduct()
		p.Images = make([]string, 11)
		for i := range p.Images {
			p.Images[i] = "https://cdn.example.com/img.jpg"
		}
		err = p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Product must have between 1 and 10 images")
	})

	t.Run("variant size enum", func(t *testing.T) {
		p := validProduct()
		p.Variants = []Variant{{Size: "Gigantic", Price: 10, SKU: "SKU-1"}}
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Variant size must be one of")

		p.Variants = []Variant{{Size: "250g", Price: 10, SKU: "SKU-1"}}
		assert.NoError(t, p.Validate())
	})

	t.Run("variant requires sku", func(t *testing.T) {
		p := validProduct()
		p.Variants = []Variant{{Size: "Small", Price: 10}}
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Variant SKU is required")
	})

	t.Run("rating out of range", func(t *testing.T) {
		p := validProduct()
		p.Ratings = []Rating{{User: primitive.NewObjectID(), Rating: 6}}
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Rating must be between 1 and 5")
	})

	t.Run("review over 500 characters", func(t *testing.T) {
		p := validProduct()
		p.Ratings = []Rating{{User: primitive.NewObjectID(), Rating: 4, Review: strings.Repeat("a", 501)}}
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Review cannot exceed 500 characters")
	})
}

func TestCategoryValidate(t *testing.T) {
	t.Run("valid category passes", func(t *testing.T) {
		cat := validCategory()
		assert.NoError(t, cat.Validate())
	})

	t.Run("missing fields aggregate", func(t *testing.T) {
		cat := Category{Name: "Coffee"}
		err := cat.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category slug is required")
		assert.Contains(t, err.Error(), "Category description is required")
		assert.Contains(t, err.Error(), "Category image is required")
	})

	t.Run("name over 100 characters", func(t *testing.T) {
		cat := validCategory()
		cat.Name = strings.Repeat("x", 101)
		err := cat.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category name cannot exceed 100 characters")
	})
}

func TestUpdateInputValidate(t *testing.T) {
	t.Run("nil fields are skipped", func(t *testing.T) {
		in := UpdateProductInput{}
		assert.NoError(t, in.Validate())
	})

	t.Run("supplied fields are re-validated", func(t *testing.T) {
		price := -5.0
		in := UpdateProductInput{Price: &price}
		err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Price cannot be negative")
	})

	t.Run("category input shares messages", func(t *testing.T) {
		long := strings.Repeat("x", 101)
		in := UpdateCategoryInput{Name: &long}
		err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category name cannot exceed 100 characters")
	})
}

func TestNormalize(t *testing.T) {
	t.Run("product slug is trimmed and lowercased", func(t *testing.T) {
		p := validProduct()
		p.Slug = "  Arabica-Beans  "
		p.Normalize()
		assert.Equal(t, "arabica-beans", p.Slug)
	})

	t.Run("embedded records gain identity and timestamps", func(t *testing.T) {
		p := validProduct()
		p.Variants = []Variant{{Size: "1kg", Price: 20, SKU: " SKU-9 "}}
		p.Ratings = []Rating{{User: primitive.NewObjectID(), Rating: 5}}
		p.Normalize()

		assert.False(t, p.Variants[0].ID.IsZero())
		assert.Equal(t, "SKU-9", p.Variants[0].SKU)
		assert.False(t, p.Ratings[0].ID.IsZero())
		assert.WithinDuration(t, time.Now(), p.Ratings[0].CreatedAt, time.Minute)
	})

	t.Run("existing identity is preserved", func(t *testing.T) {
		id := primitive.NewObjectID()
		p := validProduct()
		p.Variants = []Variant{{ID: id, Size: "1kg", Price: 20, SKU: "SKU-9"}}
		p.Normalize()
		assert.Equal(t, id, p.Variants[0].ID)
	})

	t.Run("category normalize", func(t *testing.T) {
		cat := validCategory()
		cat.Name = "  Coffee "
		cat.Slug = " COFFEE "
		cat.Normalize()
		assert.Equal(t, "Coffee", cat.Name)
		assert.Equal(t, "coffee", cat.Slug)
	})
}

func TestMissingFields(t *testing.T) {
	price := 10.0
	full := CreateProductInput{
		Name:        "Arabica Beans",
		Slug:        "arabica-beans",
		Description: "Beans",
		Price:       &price,
		Images:      []string{"a.jpg"},
		Category:    primitive.NewObjectID().Hex(),
	}
	assert.Empty(t, full.MissingFields())

	empty := CreateProductInput{}
	assert.Equal(t,
		[]string{"name", "slug", "description", "price", "images", "category"},
		empty.MissingFields())

	// zero price counts as present
	zero := full
	zeroPrice := 0.0
	zero.Price = &zeroPrice
	assert.Empty(t, zero.MissingFields())
}
