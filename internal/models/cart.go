package models

import "time"

// CartLine est une ligne de panier. La quantité est la seule source de
// vérité : TotalAmount est toujours recalculé (quantité × prix unitaire),
// jamais fixé directement.
type CartLine struct {
	ProductID   string  `bson:"product_id" json:"productId"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unit_price" json:"unitPrice"`
	TotalAmount float64 `bson:"total_amount" json:"totalAmount"`
}

// Cart : un panier par utilisateur, au plus une ligne par produit.
// Un panier sans ligne n'est jamais persisté — il est supprimé.
type Cart struct {
	ID        string     `bson:"_id" json:"id"`
	UserID    string     `bson:"user_id" json:"userId"`
	Products  []CartLine `bson:"products" json:"products"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}

// AddLine fusionne une quantité dans le panier. Si une ligne existe déjà
// pour ce produit, la quantité est incrémentée et le prix unitaire est
// re-photographié au prix courant du produit ; sinon une nouvelle ligne est
// ajoutée en fin de panier.
func (c *Cart) AddLine(productID string, quantity int, unitPrice float64) {
	for i := range c.Products {
		if c.Products[i].ProductID == productID {
			c.Products[i].Quantity += quantity
			c.Products[i].UnitPrice = unitPrice
			c.Products[i].TotalAmount = float64(c.Products[i].Quantity) * unitPrice
			return
		}
	}
	c.Products = append(c.Products, CartLine{
		ProductID:   productID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalAmount: float64(quantity) * unitPrice,
	})
}

// DecrementLine retire une unité de la ligne du produit. Le total est
// recalculé avec le prix unitaire déjà stocké (pas de re-photo ici).
// Une ligne à quantité 1 est retirée entièrement.
// Retourne false si le produit n'est pas dans le panier.
func (c *Cart) DecrementLine(productID string) bool {
	for i := range c.Products {
		if c.Products[i].ProductID != productID {
			continue
		}
		if c.Products[i].Quantity > 1 {
			c.Products[i].Quantity--
			c.Products[i].TotalAmount = float64(c.Products[i].Quantity) * c.Products[i].UnitPrice
		} else {
			c.Products = append(c.Products[:i], c.Products[i+1:]...)
		}
		return true
	}
	return false
}

// RemoveLine retire la ligne du produit quelle que soit sa quantité.
// Retourne false si le produit n'est pas dans le panier.
func (c *Cart) RemoveLine(productID string) bool {
	for i := range c.Products {
		if c.Products[i].ProductID == productID {
			c.Products = append(c.Products[:i], c.Products[i+1:]...)
			return true
		}
	}
	return false
}

// IsEmpty : un panier vide doit être supprimé du store, pas sauvegardé.
func (c *Cart) IsEmpty() bool {
	return len(c.Products) == 0
}

// TotalCount est la somme des quantités de toutes les lignes.
func (c *Cart) TotalCount() int {
	total := 0
	for _, line := range c.Products {
		total += line.Quantity
	}
	return total
}

// Total est la somme des montants de toutes les lignes.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.Products {
		total += line.TotalAmount
	}
	return total
}
