package user

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

// findProduct résout un produit via le cache Redis puis MongoDB.
func findProduct(ctx context.Context, productID string) (models.Product, error) {
	if p, ok := cache.GetProduct(ctx, productID); ok {
		return p, nil
	}

	var p models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": productID}).Decode(&p); err != nil {
		return models.Product{}, err
	}
	cache.SetProduct(ctx, p)
	return p, nil
}

// saveCart persiste le panier, ou le supprime s'il est vide (un panier vide
// n'existe jamais en base). Renvoie true si le panier a été supprimé.
func saveCart(ctx context.Context, cart *models.Cart) (bool, error) {
	if cart.IsEmpty() {
		_, err := database.Carts().DeleteOne(ctx, bson.M{"user_id": cart.UserID})
		return true, err
	}

	cart.UpdatedAt = time.Now()
	_, err := database.Carts().ReplaceOne(ctx, bson.M{"user_id": cart.UserID}, cart)
	return false, err
}

//
// 🟢 POST /api/cart/add
//
// Fusion : une seule ligne par produit. Un ajout sur une ligne existante
// incrémente la quantité et re-photographie le prix unitaire au prix
// courant du produit.
func AddToCart(c *gin.Context) {
	var input struct {
		UserID    string `json:"userId"`
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == "" || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if input.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be at least 1"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	product, err := findProduct(ctx, input.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	var cart models.Cart
	err = database.Carts().FindOne(ctx, bson.M{"user_id": input.UserID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		now := time.Now()
		cart = models.Cart{
			ID:        primitive.NewObjectID().Hex(),
			UserID:    input.UserID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		cart.AddLine(input.ProductID, input.Quantity, product.Price)
		if _, err := database.Carts().InsertOne(ctx, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, cart)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	cart.AddLine(input.ProductID, input.Quantity, product.Price)
	if _, err := saveCart(ctx, &cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, cart)
}

//
// 🟡 POST /api/cart/remove
//
// Retire une unité ; une ligne à quantité 1 disparaît. Le total est
// recalculé avec le prix unitaire stocké sur la ligne.
func RemoveFromCart(c *gin.Context) {
	var input struct {
		UserID    string `json:"userId"`
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == "" || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cart models.Cart
	if err := database.Carts().FindOne(ctx, bson.M{"user_id": input.UserID}).Decode(&cart); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
		return
	}

	if !cart.DecrementLine(input.ProductID) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not in cart"})
		return
	}

	deleted, err := saveCart(ctx, &cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if deleted {
		c.JSON(http.StatusOK, gin.H{"message": "Cart is empty"})
		return
	}

	c.JSON(http.StatusOK, cart)
}

//
// ❌ POST /api/cart/delete
//
// Retire la ligne entière quelle que soit la quantité.
func DeleteFromCart(c *gin.Context) {
	var input struct {
		UserID    string `json:"userId"`
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == "" || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cart models.Cart
	if err := database.Carts().FindOne(ctx, bson.M{"user_id": input.UserID}).Decode(&cart); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
		return
	}

	cart.RemoveLine(input.ProductID)

	deleted, err := saveCart(ctx, &cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if deleted {
		c.JSON(http.StatusOK, gin.H{"message": "Cart is empty"})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// populatedCartLine est une ligne enrichie des détails produit pour la
// lecture du panier.
type populatedCartLine struct {
	Product     models.Product `json:"product"`
	Quantity    int            `json:"quantity"`
	UnitPrice   float64        `json:"unitPrice"`
	TotalAmount float64        `json:"totalAmount"`
}

//
// 🔵 GET /api/cart/:userId
//
func GetCart(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cart models.Cart
	if err := database.Carts().FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart is empty"})
		return
	}

	lines := make([]populatedCartLine, 0, len(cart.Products))
	for _, line := range cart.Products {
		populated := populatedCartLine{
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalAmount: line.TotalAmount,
		}
		if product, err := findProduct(ctx, line.ProductID); err == nil {
			populated.Product = product
		} else {
			populated.Product = models.Product{ID: line.ProductID}
		}
		lines = append(lines, populated)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        cart.ID,
		"userId":    cart.UserID,
		"products":  lines,
		"updatedAt": cart.UpdatedAt,
	})
}

//
// 🔵 GET /api/cart/count/:userId
//
// Jamais d'erreur : 0 si le panier n'existe pas.
func GetCartCount(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	if err := database.Carts().FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart); err != nil {
		c.JSON(http.StatusOK, gin.H{"totalCount": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalCount": cart.TotalCount()})
}
