package cache

import (
	"context"
	"encoding/json"
	"time"

	"bazario_back_end/internal/database"
	"bazario_back_end/internal/models"
)

const (
	ProductCacheTTL  = 10 * time.Minute
	ListCacheTTL     = time.Hour
	AllProductsKey   = "products:all"
	AllCategoriesKey = "categories:all"
)

// GetProduct lit un produit depuis le cache Redis. Renvoie false si absent.
func GetProduct(ctx context.Context, productID string) (models.Product, bool) {
	data, err := database.Redis.Get(ctx, "product:"+productID).Result()
	if err != nil || data == "" {
		return models.Product{}, false
	}
	var p models.Product
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return models.Product{}, false
	}
	return p, true
}

// SetProduct met un produit en cache.
func SetProduct(ctx context.Context, p models.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, "product:"+p.ID, data, ProductCacheTTL)
}

// InvalidateProduct invalide le cache d'un produit et la liste globale.
func InvalidateProduct(ctx context.Context, productID string) {
	database.Redis.Del(ctx, "product:"+productID, AllProductsKey)
}

// GetList lit une liste mise en cache (produits ou catégories) dans dest.
func GetList(ctx context.Context, key string, dest interface{}) bool {
	data, err := database.Redis.Get(ctx, key).Result()
	if err != nil || data == "" {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

// SetList met une liste en cache.
func SetList(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, key, data, ListCacheTTL)
}

// InvalidateList supprime une liste du cache (après écriture admin).
func InvalidateList(ctx context.Context, key string) {
	database.Redis.Del(ctx, key)
}
