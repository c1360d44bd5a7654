package models

import "testing"

func checkLineInvariant(t *testing.T, c *Cart) {
	t.Helper()
	for _, line := range c.Products {
		want := float64(line.Quantity) * line.UnitPrice
		if line.TotalAmount != want {
			t.Errorf("line %s: totalAmount = %v, want quantity×unitPrice = %v",
				line.ProductID, line.TotalAmount, want)
		}
	}
}

func TestAddLineMergesSameProduct(t *testing.T) {
	cart := &Cart{UserID: "u1"}

	cart.AddLine("p1", 2, 100)
	if len(cart.Products) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Products))
	}
	if got := cart.Products[0].TotalAmount; got != 200 {
		t.Errorf("totalAmount = %v, want 200", got)
	}

	// Même produit : fusion en une seule ligne, quantités additionnées.
	cart.AddLine("p1", 3, 100)
	if len(cart.Products) != 1 {
		t.Fatalf("expected merged single line, got %d lines", len(cart.Products))
	}
	if got := cart.Products[0].Quantity; got != 5 {
		t.Errorf("quantity = %d, want 5", got)
	}
	if got := cart.Products[0].TotalAmount; got != 500 {
		t.Errorf("totalAmount = %v, want 500", got)
	}
	checkLineInvariant(t, cart)
}

func TestAddLineResnapshotsUnitPrice(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddLine("p1", 2, 100)

	// Le prix du produit a changé entre deux ajouts : l'ajout
	// re-photographie le prix courant pour toute la ligne.
	cart.AddLine("p1", 1, 150)

	line := cart.Products[0]
	if line.UnitPrice != 150 {
		t.Errorf("unitPrice = %v, want re-snapshotted 150", line.UnitPrice)
	}
	if line.TotalAmount != 450 {
		t.Errorf("totalAmount = %v, want 3×150 = 450", line.TotalAmount)
	}
}

func TestAddLineKeepsDistinctProducts(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddLine("p1", 1, 100)
	cart.AddLine("p2", 2, 50)

	if len(cart.Products) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Products))
	}
	if cart.TotalCount() != 3 {
		t.Errorf("TotalCount = %d, want 3", cart.TotalCount())
	}
	if cart.Total() != 200 {
		t.Errorf("Total = %v, want 200", cart.Total())
	}
	checkLineInvariant(t, cart)
}

func TestDecrementLineKeepsStoredPrice(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddLine("p1", 3, 100)

	// Contrairement à l'ajout, le décrément recalcule avec le prix
	// unitaire stocké — pas de re-photo.
	if !cart.DecrementLine("p1") {
		t.Fatal("DecrementLine returned false for existing line")
	}

	line := cart.Products[0]
	if line.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", line.Quantity)
	}
	if line.UnitPrice != 100 {
		t.Errorf("unitPrice = %v, want unchanged 100", line.UnitPrice)
	}
	if line.TotalAmount != 200 {
		t.Errorf("totalAmount = %v, want 200", line.TotalAmount)
	}
}

func TestDecrementLineRemovesQuantityOne(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddLine("p1", 1, 100)

	if !cart.DecrementLine("p1") {
		t.Fatal("DecrementLine returned false for existing line")
	}
	if !cart.IsEmpty() {
		t.Error("cart should be empty after decrementing a quantity-1 line")
	}
}

func TestDecrementLineUnknownProduct(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddLine("p1", 1, 100)

	if cart.DecrementLine("nope") {
		t.Error("DecrementLine should return false for a product not in the cart")
	}
	if cart.TotalCount() != 1 {
		t.Errorf("cart mutated by failed decrement: TotalCount = %d", cart.TotalCount())
	}
}

func TestRemoveLineIgnoresQuantity(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddLine("p1", 5, 100)
	cart.AddLine("p2", 1, 10)

	if !cart.RemoveLine("p1") {
		t.Fatal("RemoveLine returned false for existing line")
	}
	if len(cart.Products) != 1 || cart.Products[0].ProductID != "p2" {
		t.Errorf("expected only p2 to remain, got %+v", cart.Products)
	}

	if cart.RemoveLine("p1") {
		t.Error("RemoveLine should return false once the line is gone")
	}
}

func TestCountMatchesQuantitySum(t *testing.T) {
	cart := &Cart{UserID: "u1"}

	adds := []struct {
		productID string
		qty       int
		price     float64
	}{
		{"p1", 2, 10},
		{"p2", 1, 99},
		{"p1", 4, 10},
		{"p3", 7, 1},
	}
	for _, a := range adds {
		cart.AddLine(a.productID, a.qty, a.price)
	}

	sum := 0
	for _, line := range cart.Products {
		sum += line.Quantity
	}
	if cart.TotalCount() != sum {
		t.Errorf("TotalCount = %d, want sum of line quantities %d", cart.TotalCount(), sum)
	}
	if sum != 14 {
		t.Errorf("quantity sum = %d, want 14", sum)
	}
	checkLineInvariant(t, cart)
}
