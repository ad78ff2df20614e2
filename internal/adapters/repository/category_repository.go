package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emeka-dev/catalog-backend/internal/apperrors"
	"github.com/emeka-dev/catalog-backend/internal/models"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CategoryNameExists(ctx context.Context, name string, exclude primitive.ObjectID) (bool, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategoryByID(ctx context.Context, id primitive.ObjectID) (models.Category, error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, input models.UpdateCategoryInput) (models.Category, error)
}

type MongoCategoryRepository struct {
	DB *mongo.Database
}

func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoCategoryRepository{DB: db}
}

func (r *MongoCategoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	collection := r.DB.Collection("categories")

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryNameExists is the explicit pre-check before create/rename. The
// unique index on name backstops the race between this check and the write.
func (r *MongoCategoryRepository) CategoryNameExists(ctx context.Context, name string, exclude primitive.ObjectID) (bool, error) {
	collection := r.DB.Collection("categories")

	filter := bson.M{"name": name}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoCategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	collection := r.DB.Collection("categories")

	res, err := collection.InsertOne(ctx, category)
	if err != nil {
		return models.Category{}, apperrors.FromWrite(err, "Category")
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return category, nil
}

func (r *MongoCategoryRepository) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	collection := r.DB.Collection("categories")

	var category models.Category
	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Category{}, &apperrors.NotFoundError{Entity: "Category"}
		}
		return models.Category{}, err
	}
	return category, nil
}

func (r *MongoCategoryRepository) UpdateCategory(ctx context.Context, id primitive.ObjectID, input models.UpdateCategoryInput) (models.Category, error) {
	collection := r.DB.Collection("categories")

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": input}

	var category models.Category
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Category{}, &apperrors.NotFoundError{Entity: "Category"}
		}
		return models.Category{}, apperrors.FromWrite(err, "Category")
	}
	return category, nil
}
