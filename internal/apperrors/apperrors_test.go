package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyErr(msg string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: msg},
		},
	}
}

func TestFromWrite(t *testing.T) {
	t.Run("nil error passes through", func(t *testing.T) {
		assert.NoError(t, FromWrite(nil, "Product"))
	})

	t.Run("non-duplicate error passes through unchanged", func(t *testing.T) {
		cause := errors.New("connection reset")
		assert.Equal(t, cause, FromWrite(cause, "Product"))
	})

	t.Run("duplicate key on name index", func(t *testing.T) {
		err := FromWrite(duplicateKeyErr("E11000 duplicate key error collection: catalog.categories index: idx_name dup key"), "Category")

		var de *DuplicateError
		assert.ErrorAs(t, err, &de)
		assert.Equal(t, "name", de.Field)
		assert.Equal(t, "A category with this name already exists", de.Message)
	})

	t.Run("duplicate key on slug index", func(t *testing.T) {
		err := FromWrite(duplicateKeyErr("E11000 duplicate key error collection: catalog.products index: idx_slug dup key"), "Product")

		var de *DuplicateError
		assert.ErrorAs(t, err, &de)
		assert.Equal(t, "slug", de.Field)
		assert.Equal(t, "A product with this slug already exists", de.Message)
	})

	t.Run("duplicate key on variant sku index", func(t *testing.T) {
		err := FromWrite(duplicateKeyErr("E11000 duplicate key error collection: catalog.products index: idx_sku dup key"), "Product")

		var de *DuplicateError
		assert.ErrorAs(t, err, &de)
		assert.Equal(t, "sku", de.Field)
	})

	t.Run("unidentifiable index defaults to slug", func(t *testing.T) {
		err := FromWrite(duplicateKeyErr("E11000 duplicate key error"), "Product")

		var de *DuplicateError
		assert.ErrorAs(t, err, &de)
		assert.Equal(t, "slug", de.Field)
	})
}

func TestTaxonomyHelpers(t *testing.T) {
	validation := NewValidationError("Product name is required", "Price cannot be negative")
	duplicate := &DuplicateError{Message: "A product with this slug already exists", Field: "slug"}
	notFound := &NotFoundError{Entity: "Product"}

	assert.True(t, IsValidation(validation))
	assert.True(t, IsDuplicate(duplicate))
	assert.True(t, IsNotFound(notFound))

	assert.False(t, IsValidation(duplicate))
	assert.False(t, IsDuplicate(notFound))
	assert.False(t, IsNotFound(validation))

	// wrapped errors are still recognized
	wrapped := fmt.Errorf("saving product: %w", duplicate)
	assert.True(t, IsDuplicate(wrapped))

	assert.Equal(t, "Product name is required, Price cannot be negative", validation.Error())
	assert.Equal(t, "Product not found", notFound.Error())
}
