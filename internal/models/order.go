package models

import "time"

// Statuts de paiement. Paid est terminal : seule la callback signée du
// gateway peut faire passer Pending → Paid.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// Statuts de commande, modifiés par action admin.
const (
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// OrderLine est une photo de la ligne de panier au moment du checkout,
// découplée des modifications ultérieures du produit.
type OrderLine struct {
	ProductID   string  `bson:"product_id" json:"productId"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unit_price" json:"unitPrice"`
	TotalAmount float64 `bson:"total_amount" json:"totalAmount"`
}

// Address est photographiée sur la commande au checkout.
type Address struct {
	FullName      string `bson:"full_name" json:"fullName" validate:"required"`
	StreetAddress string `bson:"street_address" json:"streetAddress" validate:"required"`
	City          string `bson:"city" json:"city" validate:"required"`
	State         string `bson:"state" json:"state" validate:"required"`
	ZipCode       string `bson:"zip_code" json:"zipCode" validate:"required"`
	Country       string `bson:"country" json:"country" validate:"required"`
	Phone         string `bson:"phone" json:"phone" validate:"required"`
}

// Order est créée une fois au checkout et jamais supprimée. RazorpayOrderID
// référence la commande distante du gateway une fois créée.
type Order struct {
	ID              string      `bson:"_id" json:"id"`
	UserID          string      `bson:"user_id" json:"userId"`
	OrderID         string      `bson:"order_id" json:"orderId"`
	RazorpayOrderID string      `bson:"razorpay_order_id,omitempty" json:"razorpayOrderId,omitempty"`
	Products        []OrderLine `bson:"products" json:"products"`
	Address         Address     `bson:"address" json:"address"`
	TotalAmount     float64     `bson:"total_amount" json:"totalAmount"`
	PaymentStatus   string      `bson:"payment_status" json:"paymentStatus"`
	OrderStatus     string      `bson:"order_status" json:"orderStatus"`
	CreatedAt       time.Time   `bson:"created_at" json:"createdAt"`
}

// OrderSummary est la projection renvoyée par les listes de commandes.
type OrderSummary struct {
	ID              string    `bson:"_id" json:"id"`
	TotalAmount     float64   `bson:"total_amount" json:"totalAmount"`
	PaymentStatus   string    `bson:"payment_status" json:"paymentStatus"`
	OrderStatus     string    `bson:"order_status" json:"orderStatus"`
	RazorpayOrderID string    `bson:"razorpay_order_id,omitempty" json:"razorpayOrderId,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

// ValidOrderStatus vérifie qu'un statut de commande fait partie du cycle de
// vie connu.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
