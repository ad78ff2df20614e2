package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emeka-dev/catalog-backend/internal/adapters/repository"
	"github.com/emeka-dev/catalog-backend/internal/config"
	"github.com/emeka-dev/catalog-backend/utils"
)

const apiVersion = "1.0.0"

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg config.Config) {
	logrus.Info("Setting up routes...")

	// Health check route
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "API is running...",
			"version": apiVersion,
		})
	})

	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	dev := cfg.IsDevelopment()
	productHandler := NewProductHandler(productRepo, dev)
	categoryHandler := NewCategoryHandler(categoryRepo, dev)
	uploadHandler := NewUploadHandler(cfg)

	products := router.Group("/api/products")
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("/:id", productHandler.GetProductByID)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	categories := router.Group("/api/categories")
	{
		categories.GET("", categoryHandler.GetAllCategories)
		categories.POST("", categoryHandler.CreateCategory)
		categories.PUT("/:id", categoryHandler.UpdateCategory)
	}

	router.POST("/api/upload", uploadHandler.UploadImage)

	// Must be registered after all routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Route not found"))
	})
}
