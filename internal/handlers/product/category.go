package product

import (
	"context"
	"net/http"
	"time"

	"bazario_back_end/internal/cache"
	"bazario_back_end/internal/database"
	"bazario_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//
// 🟢 POST /api/categories (admin)
//
func CreateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The field 'name' is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.Category
	err := database.Categories().FindOne(ctx, bson.M{"name": input.Name}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Category already exists"})
		return
	}
	if err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	category := models.Category{
		ID:        primitive.NewObjectID().Hex(),
		Name:      input.Name,
		CreatedAt: time.Now(),
	}

	if _, err := database.Categories().InsertOne(ctx, category); err != nil {
		// l'index unique couvre la course entre FindOne et InsertOne
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "Category already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	cache.InvalidateList(ctx, cache.AllCategoriesKey)
	c.JSON(http.StatusCreated, category)
}

//
// 🔵 GET /api/categories
//
func GetAllCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cached []models.Category
	if cache.GetList(ctx, cache.AllCategoriesKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	cursor, err := database.Categories().Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	cache.SetList(ctx, cache.AllCategoriesKey, categories)
	c.JSON(http.StatusOK, categories)
}
