package payement

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"bazario_back_end/internal/config"
	"bazario_back_end/internal/database"
	"bazario_back_end/internal/models"
	"bazario_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
	rzputils "github.com/razorpay/razorpay-go/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client    *razorpay.Client
	keySecret string
	appConfig *config.Config
)

// Init initialise le client Razorpay une seule fois au démarrage.
func Init(cfg *config.Config) {
	appConfig = cfg
	keySecret = cfg.RazorpayKeySecret
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		log.Println("⚠️ Clés Razorpay absentes — bridge de paiement désactivé")
		return
	}
	client = razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	log.Println("✅ Razorpay initialisé")
}

// amountInPaise convertit un montant en roupies vers des paise entiers.
// L'arrondi évite de perdre un paisa sur les flottants du genre 499.99.
func amountInPaise(total float64) int64 {
	return int64(math.Round(total * 100))
}

//
// 🟢 POST /api/razorpay/create-order
//
// Crée la commande distante (montant ×100, en paise, devise INR) et stocke
// sa référence sur la commande locale correspondante.
func CreateRazorpayOrder(c *gin.Context) {
	if client == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment gateway not configured"})
		return
	}

	var input struct {
		OrderID     string  `json:"orderId"`
		TotalAmount float64 `json:"totalAmount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	data := map[string]interface{}{
		"amount":   amountInPaise(input.TotalAmount),
		"currency": "INR",
		"receipt":  input.OrderID,
	}

	remote, err := client.Order.Create(data, nil)
	if err != nil {
		log.Println("❌ Erreur création commande Razorpay:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating Razorpay order"})
		return
	}

	remoteID, _ := remote["id"].(string)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := database.Orders().UpdateOne(ctx,
		bson.M{"order_id": input.OrderID},
		bson.M{"$set": bson.M{"razorpay_order_id": remoteID}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if res.MatchedCount == 0 {
		// le client garde l'id distant pour le checkout, mais la réconciliation échouera
		log.Printf("⚠️ Aucune commande locale %s pour la commande Razorpay %s", input.OrderID, remoteID)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       remoteID,
		"amount":   remote["amount"],
		"currency": remote["currency"],
	})
}

//
// 🔐 POST /api/razorpay/verify-payment
//
// Frontière de confiance : seule une callback dont la signature HMAC du
// payload `order_id|payment_id` est valide peut passer une commande à Paid.
// Rejouer une callback valide est idempotent (la commande reste Paid).
func VerifyPayment(c *gin.Context) {
	// Sans secret de gateway, un HMAC calculé avec la clé vide passerait la
	// vérification : on refuse toute callback tant que le bridge est désactivé.
	if keySecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment gateway not configured"})
		return
	}

	var input struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
	}
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.RazorpayOrderID == "" || input.RazorpayPaymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	params := map[string]interface{}{
		"razorpay_order_id":   input.RazorpayOrderID,
		"razorpay_payment_id": input.RazorpayPaymentID,
	}
	if !rzputils.VerifyPaymentSignature(params, input.RazorpaySignature, keySecret) {
		log.Printf("❌ Signature invalide pour la commande Razorpay %s", input.RazorpayOrderID)
		c.JSON(http.StatusBadRequest, gin.H{"status": "invalid_signature"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := database.Orders().FindOneAndUpdate(ctx,
		bson.M{"razorpay_order_id": input.RazorpayOrderID},
		bson.M{"$set": bson.M{"payment_status": models.PaymentPaid}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	log.Printf("💰 Paiement confirmé pour la commande %s", order.OrderID)
	go sendConfirmationEmail(order)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sendConfirmationEmail retrouve l'email du client et envoie la
// confirmation. Un échec d'envoi n'affecte jamais la réponse de paiement.
func sendConfirmationEmail(order models.Order) {
	// Sans SMTP configuré, inutile d'aller chercher l'utilisateur.
	if appConfig == nil || appConfig.SMTPHost == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := database.Users().FindOne(ctx, bson.M{"_id": order.UserID}).Decode(&user); err != nil {
		log.Println("⚠️ Email de confirmation : utilisateur introuvable:", err)
		return
	}

	if err := utils.SendOrderConfirmation(appConfig, user.Email, order); err != nil {
		log.Println("⚠️ Échec envoi email de confirmation:", err)
	}
}
