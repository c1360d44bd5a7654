package admin

import (
	"context"
	"net/http"
	"time"

	"bazario_back_end/internal/database"
	"bazario_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//
// 🔵 GET /api/orders (vue admin)
//
// Résumés de toutes les commandes, plus récentes d'abord.
func GetAllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{
			"total_amount":      1,
			"payment_status":    1,
			"order_status":      1,
			"razorpay_order_id": 1,
			"created_at":        1,
		})

	cursor, err := database.Orders().Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching orders"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.OrderSummary{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

//
// 🟡 PUT /api/orders/:id/status
//
// Seul le statut logistique est modifiable ici ; le statut de paiement
// n'appartient qu'à la callback signée du gateway.
func UpdateOrderStatus(c *gin.Context) {
	var input struct {
		OrderStatus string `json:"orderStatus"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.OrderStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Order status is required"})
		return
	}
	if !models.ValidOrderStatus(input.OrderStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown order status"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := database.Orders().FindOneAndUpdate(ctx,
		bson.M{"_id": c.Param("id")},
		bson.M{"$set": bson.M{"order_status": input.OrderStatus}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   order,
	})
}
