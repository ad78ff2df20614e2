package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VariantSizes are the only accepted values for Variant.Size.
var VariantSizes = []string{"Small", "Medium", "Large", "XL", "250g", "500g", "1kg", "2kg"}

// Variant is a size/color/SKU combination embedded in a Product. Each
// element carries its own identity but has no lifecycle outside its parent.
type Variant struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Size  string             `json:"size" bson:"size" validate:"required,oneof=Small Medium Large XL 250g 500g 1kg 2kg"`
	Color string             `json:"color,omitempty" bson:"color,omitempty"`
	Price float64            `json:"price" bson:"price" validate:"gte=0"`
	Stock int                `json:"stock" bson:"stock" validate:"gte=0"`
	SKU   string             `json:"sku" bson:"sku" validate:"required"`
}

// Rating is one user's score and optional review, embedded in a Product.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `json:"user" bson:"user" validate:"required"`
	Rating    int                `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Review    string             `json:"review,omitempty" bson:"review,omitempty" validate:"omitempty,max=500"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `json:"name" bson:"name" validate:"required,max=200"`
	Slug        string             `json:"slug" bson:"slug" validate:"required"`
	Description string             `json:"description" bson:"description" validate:"required,max=2000"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	Images      []string           `json:"images" bson:"images" validate:"required,min=1,max=10"`
	Category    primitive.ObjectID `json:"category" bson:"category"`
	Stock       int                `json:"stock" bson:"stock" validate:"gte=0"`
	Variants    []Variant          `json:"variants" bson:"variants" validate:"dive"`
	Ratings     []Rating           `json:"ratings" bson:"ratings" validate:"dive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CategoryRef is the slice of a Category that gets joined onto a product
// on read. Never persisted.
type CategoryRef struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
}

// ProductDetail is a Product with its category reference expanded.
type ProductDetail struct {
	Product  `bson:",inline"`
	Category CategoryRef `json:"category" bson:"categoryDetail"`
}

// CreateProductInput is the accepted body for POST /api/products. Price and
// stock are pointers so a missing field is distinguishable from zero.
type CreateProductInput struct {
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       *float64  `json:"price"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Stock       *int      `json:"stock"`
	Variants    []Variant `json:"variants"`
	Ratings     []Rating  `json:"ratings"`
}

// MissingFields returns the required fields absent from the input.
func (in *CreateProductInput) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Slug) == "" {
		missing = append(missing, "slug")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.Images == nil {
		missing = append(missing, "images")
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}
	return missing
}

// UpdateProductInput allow-lists the client-mutable fields for
// PUT /api/products/:id. Category comes in as a hex string so the handler
// can reject malformed references before anything touches the store; the
// parsed ObjectID lands in CategoryID for the write.
type UpdateProductInput struct {
	Name        *string             `json:"name" bson:"name,omitempty" validate:"omitempty,max=200"`
	Slug        *string             `json:"slug" bson:"slug,omitempty"`
	Description *string             `json:"description" bson:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *float64            `json:"price" bson:"price,omitempty" validate:"omitempty,gte=0"`
	Images      []string            `json:"images" bson:"images,omitempty"`
	Category    *string             `json:"category" bson:"-"`
	CategoryID  *primitive.ObjectID `json:"-" bson:"category,omitempty"`
	Stock       *int                `json:"stock" bson:"stock,omitempty" validate:"omitempty,gte=0"`
	Variants    []Variant           `json:"variants" bson:"variants,omitempty" validate:"dive"`
	Ratings     []Rating            `json:"ratings" bson:"ratings,omitempty" validate:"dive"`
	UpdatedAt   time.Time           `json:"-" bson:"updatedAt"`
}

// Normalize applies the storage-layer field transforms and stamps identity
// and creation time onto embedded records that lack them.
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
	p.Description = strings.TrimSpace(p.Description)
	p.Variants = prepareVariants(p.Variants)
	p.Ratings = prepareRatings(p.Ratings)
}

func (in *UpdateProductInput) Normalize() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Slug != nil {
		*in.Slug = strings.ToLower(strings.TrimSpace(*in.Slug))
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
	in.Variants = prepareVariants(in.Variants)
	in.Ratings = prepareRatings(in.Ratings)
}

func prepareVariants(variants []Variant) []Variant {
	for i := range variants {
		if variants[i].ID.IsZero() {
			variants[i].ID = primitive.NewObjectID()
		}
		variants[i].SKU = strings.TrimSpace(variants[i].SKU)
	}
	return variants
}

func prepareRatings(ratings []Rating) []Rating {
	for i := range ratings {
		if ratings[i].ID.IsZero() {
			ratings[i].ID = primitive.NewObjectID()
		}
		if ratings[i].CreatedAt.IsZero() {
			ratings[i].CreatedAt = time.Now()
		}
		ratings[i].Review = strings.TrimSpace(ratings[i].Review)
	}
	return ratings
}
