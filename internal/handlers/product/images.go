package product

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"bazario_back_end/internal/cache"
	"bazario_back_end/internal/config"
	"bazario_back_end/internal/database"
	"bazario_back_end/internal/models"
	"bazario_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//
// 🖼️ POST /api/products/:id/image (admin, multipart "image")
//
// Stocke le binaire dans MinIO et écrit l'URL de l'objet sur le produit.
func UploadProductImage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.MinIO == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Image storage not configured"})
			return
		}

		productID := c.Param("id")

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "The field 'image' is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read upload"})
			return
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		objectName := fmt.Sprintf("products/%s%s", productID, filepath.Ext(fileHeader.Filename))
		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		_, err = database.MinIO.PutObject(ctx, cfg.MinioBucket, objectName, file, fileHeader.Size,
			minio.PutObjectOptions{ContentType: contentType})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
			return
		}

		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		imageURL := fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.MinioEndpoint, cfg.MinioBucket, objectName)

		var product models.Product
		err = database.Products().FindOneAndUpdate(ctx,
			bson.M{"_id": productID},
			bson.M{"$set": bson.M{"image": imageURL, "updated_at": time.Now()}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&product)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}

		cache.InvalidateProduct(ctx, productID)
		go services.IndexProduct(product)

		c.JSON(http.StatusOK, gin.H{"message": "Image uploaded successfully", "image": imageURL})
	}
}
