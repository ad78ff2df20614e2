package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name           string              `json:"name" bson:"name" validate:"required,max=100"`
	Slug           string              `json:"slug" bson:"slug" validate:"required"`
	Description    string              `json:"description" bson:"description" validate:"required,max=500"`
	Image          string              `json:"image" bson:"image" validate:"required"`
	ParentCategory *primitive.ObjectID `json:"parentCategory,omitempty" bson:"parentCategory"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// CreateCategoryInput is the accepted body for POST /api/categories.
type CreateCategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// UpdateCategoryInput allow-lists the client-mutable fields for
// PUT /api/categories/:id. Only non-nil fields are written, so a partial
// body leaves the rest of the document untouched.
type UpdateCategoryInput struct {
	Name           *string             `json:"name" bson:"name,omitempty" validate:"omitempty,max=100"`
	Slug           *string             `json:"slug" bson:"slug,omitempty"`
	Description    *string             `json:"description" bson:"description,omitempty" validate:"omitempty,max=500"`
	Image          *string             `json:"image" bson:"image,omitempty"`
	ParentCategory *primitive.ObjectID `json:"parentCategory" bson:"parentCategory,omitempty"`
	UpdatedAt      time.Time           `json:"-" bson:"updatedAt"`
}

// Normalize applies the storage-layer field transforms: trimming and a
// lowercase slug.
func (c *Category) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Slug = strings.ToLower(strings.TrimSpace(c.Slug))
	c.Description = strings.TrimSpace(c.Description)
	c.Image = strings.TrimSpace(c.Image)
}

func (in *UpdateCategoryInput) Normalize() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Slug != nil {
		*in.Slug = strings.ToLower(strings.TrimSpace(*in.Slug))
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
	if in.Image != nil {
		*in.Image = strings.TrimSpace(*in.Image)
	}
}
