package product

import (
	"context"
	"log"
	"net/http"
	"time"

	"bazario_back_end/internal/cache"
	"bazario_back_end/internal/database"
	"bazario_back_end/internal/models"
	"bazario_back_end/internal/services"
	"bazario_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//
// 🟢 POST /api/products (admin)
//
func CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if violations := utils.ValidateStruct(input); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required", "errors": violations})
		return
	}

	now := time.Now()
	product := models.Product{
		ID:          primitive.NewObjectID().Hex(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.Products().InsertOne(ctx, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product"})
		return
	}

	cache.InvalidateList(ctx, cache.AllProductsKey)

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(product)

	log.Printf("✅ Produit créé: %s (%s)", product.Name, product.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": product})
}

//
// 🔵 GET /api/products
//
func GetAllProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cached []models.Product
	if cache.GetList(ctx, cache.AllProductsKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	cursor, err := database.Products().Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	cache.SetList(ctx, cache.AllProductsKey, products)
	c.JSON(http.StatusOK, products)
}

//
// 🔵 GET /api/products/:id
//
func GetProductByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	productID := c.Param("id")
	if p, ok := cache.GetProduct(ctx, productID); ok {
		c.JSON(http.StatusOK, p)
		return
	}

	var product models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	cache.SetProduct(ctx, product)
	c.JSON(http.StatusOK, product)
}

//
// 🟡 PUT /api/products/:id (admin)
//
func UpdateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if violations := utils.ValidateStruct(input); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required", "errors": violations})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID := c.Param("id")
	update := bson.M{"$set": bson.M{
		"name":        input.Name,
		"category":    input.Category,
		"price":       input.Price,
		"description": input.Description,
		"image":       input.Image,
		"updated_at":  time.Now(),
	}}

	var product models.Product
	err := database.Products().FindOneAndUpdate(ctx,
		bson.M{"_id": productID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
		return
	}

	cache.InvalidateProduct(ctx, productID)
	go services.IndexProduct(product)

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "updatedProduct": product})
}

//
// ❌ DELETE /api/products/:id (admin)
//
func DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID := c.Param("id")
	res, err := database.Products().DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	cache.InvalidateProduct(ctx, productID)
	go services.RemoveProduct(productID)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

//
// 🔍 GET /api/products/search?q=
//
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter 'q' is required"})
		return
	}

	products, err := services.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Search unavailable"})
		return
	}

	c.JSON(http.StatusOK, products)
}
