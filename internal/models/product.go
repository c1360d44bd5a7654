package models

import "time"

// Product porte le libellé de catégorie tel quel (pas de jointure) et une
// référence d'image (URL MinIO ou externe).
type Product struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description" json:"description"`
	Image       string    `bson:"image" json:"image"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProductInput est le payload de création/mise à jour. Tous les champs sont
// obligatoires ; la validation renvoie la liste complète des violations.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image" validate:"required"`
}
