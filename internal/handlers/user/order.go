package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"bazario_back_end/internal/database"
	"bazario_back_end/internal/middleware"
	"bazario_back_end/internal/models"
	"bazario_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderSummaryProjection limite les listes aux champs de résumé.
var orderSummaryProjection = bson.M{
	"total_amount":      1,
	"payment_status":    1,
	"order_status":      1,
	"razorpay_order_id": 1,
	"created_at":        1,
}

//
// 🟢 POST /api/orders
//
// Photographie le panier au checkout : lignes, adresse et total sont copiés
// tels quels et ne bougeront plus, même si le produit change de prix.
// Le panier n'est pas vidé ici (laissé à l'appelant).
func PlaceOrder(c *gin.Context) {
	var input struct {
		UserID        string             `json:"userId" validate:"required"`
		Address       models.Address     `json:"address"`
		Products      []models.OrderLine `json:"products" validate:"required,min=1"`
		TotalAmount   float64            `json:"totalAmount"`
		PaymentStatus string             `json:"paymentStatus"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data"})
		return
	}
	if violations := utils.ValidateStruct(input); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data", "errors": violations})
		return
	}

	if input.PaymentStatus == "" {
		input.PaymentStatus = models.PaymentPending
	}

	now := time.Now()
	order := models.Order{
		ID:            primitive.NewObjectID().Hex(),
		UserID:        input.UserID,
		OrderID:       utils.NewOrderID(now),
		Products:      input.Products,
		Address:       input.Address,
		TotalAmount:   input.TotalAmount,
		PaymentStatus: input.PaymentStatus,
		OrderStatus:   models.OrderProcessing,
		CreatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.Orders().InsertOne(ctx, order); err != nil {
		log.Println("❌ Erreur enregistrement commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while placing order"})
		return
	}

	log.Printf("🧾 Commande %s créée pour user %s (%.2f)", order.OrderID, order.UserID, order.TotalAmount)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
		"orderId": order.OrderID,
	})
}

//
// 🔵 GET /api/orders/my-orders
//
// Résumés des commandes de l'appelant, plus récentes d'abord.
func GetMyOrders(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(orderSummaryProjection)

	cursor, err := database.Orders().Find(ctx, bson.M{"user_id": claims.UserID}, opts)
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

// populatedOrderLine est une ligne de commande enrichie des détails produit.
type populatedOrderLine struct {
	Product     models.Product `json:"product"`
	Quantity    int            `json:"quantity"`
	UnitPrice   float64        `json:"unitPrice"`
	TotalAmount float64        `json:"totalAmount"`
}

//
// 🔵 GET /api/orders/:id
//
func GetOrderByID(c *gin.Context) {
	orderID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := database.Orders().FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	lines := make([]populatedOrderLine, 0, len(order.Products))
	for _, line := range order.Products {
		populated := populatedOrderLine{
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalAmount: line.TotalAmount,
		}
		if product, err := findProduct(ctx, line.ProductID); err == nil {
			populated.Product = product
		} else {
			// produit supprimé depuis : la photo de la ligne reste valable
			populated.Product = models.Product{ID: line.ProductID}
		}
		lines = append(lines, populated)
	}

	c.JSON(http.StatusOK, gin.H{"order": gin.H{
		"id":              order.ID,
		"userId":          order.UserID,
		"orderId":         order.OrderID,
		"razorpayOrderId": order.RazorpayOrderID,
		"products":        lines,
		"address":         order.Address,
		"totalAmount":     order.TotalAmount,
		"paymentStatus":   order.PaymentStatus,
		"orderStatus":     order.OrderStatus,
		"createdAt":       order.CreatedAt,
	}})
}
