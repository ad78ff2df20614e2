package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emeka-dev/catalog-backend/internal/apperrors"
	"github.com/emeka-dev/catalog-backend/internal/models"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	GetProductDetail(ctx context.Context, id primitive.ObjectID) (models.ProductDetail, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, input models.UpdateProductInput) error
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

type MongoProductRepository struct {
	DB *mongo.Database
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoProductRepository{DB: db}
}

func (r *MongoProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	collection := r.DB.Collection("products")

	res, err := collection.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, apperrors.FromWrite(err, "Product")
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (r *MongoProductRepository) GetProductByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	collection := r.DB.Collection("products")

	var product models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Product{}, &apperrors.NotFoundError{Entity: "Product"}
		}
		return models.Product{}, err
	}
	return product, nil
}

// GetProductDetail fetches a product with its category reference expanded
// to the category's name, slug and description. The join happens on read;
// nothing denormalized is persisted.
func (r *MongoProductRepository) GetProductDetail(ctx context.Context, id primitive.ObjectID) (models.ProductDetail, error) {
	collection := r.DB.Collection("products")

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryDetail",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$categoryDetail",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return models.ProductDetail{}, err
	}
	defer cursor.Close(ctx)

	var results []models.ProductDetail
	if err := cursor.All(ctx, &results); err != nil {
		return models.ProductDetail{}, err
	}
	if len(results) == 0 {
		return models.ProductDetail{}, &apperrors.NotFoundError{Entity: "Product"}
	}
	return results[0], nil
}

func (r *MongoProductRepository) UpdateProduct(ctx context.Context, id primitive.ObjectID, input models.UpdateProductInput) error {
	collection := r.DB.Collection("products")

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": input})
	if err != nil {
		return apperrors.FromWrite(err, "Product")
	}
	if result.MatchedCount == 0 {
		return &apperrors.NotFoundError{Entity: "Product"}
	}
	return nil
}

func (r *MongoProductRepository) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	collection := r.DB.Collection("products")

	res, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperrors.NotFoundError{Entity: "Product"}
	}
	return nil
}
