package models

import "testing"

func TestValidOrderStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{OrderProcessing, true},
		{OrderShipped, true},
		{OrderDelivered, true},
		{OrderCancelled, true},
		{"", false},
		{"processing", false}, // sensible à la casse
		{PaymentPaid, false},  // statut de paiement, pas de commande
	}

	for _, tt := range tests {
		if got := ValidOrderStatus(tt.status); got != tt.want {
			t.Errorf("ValidOrderStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestOrderLinesAreSnapshots(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddLine("p1", 5, 100)

	lines := make([]OrderLine, 0, len(cart.Products))
	for _, cl := range cart.Products {
		lines = append(lines, OrderLine{
			ProductID:   cl.ProductID,
			Quantity:    cl.Quantity,
			UnitPrice:   cl.UnitPrice,
			TotalAmount: cl.TotalAmount,
		})
	}
	order := Order{Products: lines, TotalAmount: cart.Total()}

	// Le panier bouge après le checkout : la commande ne doit pas suivre.
	cart.AddLine("p1", 1, 999)

	if order.Products[0].Quantity != 5 {
		t.Errorf("order line quantity = %d, want snapshot 5", order.Products[0].Quantity)
	}
	if order.Products[0].UnitPrice != 100 {
		t.Errorf("order line unitPrice = %v, want snapshot 100", order.Products[0].UnitPrice)
	}
	if order.TotalAmount != 500 {
		t.Errorf("order totalAmount = %v, want snapshot 500", order.TotalAmount)
	}
}
