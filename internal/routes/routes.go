package routes

import (
	"net/http"

	"bazario_back_end/internal/config"
	"bazario_back_end/internal/handlers/admin"
	"bazario_back_end/internal/handlers/payement"
	"bazario_back_end/internal/handlers/product"
	"bazario_back_end/internal/handlers/user"
	"bazario_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	r.Use(cors.Default())
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	auth := middleware.AuthRequired(cfg)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running...")
	})

	api := r.Group("/api")

	// Auth
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/signup", middleware.SignupRateLimit(), user.Signup(cfg))
		authRoutes.POST("/login", middleware.LoginRateLimit(), user.Login(cfg))
		authRoutes.GET("/profile", auth, user.Profile)
	}

	// Categories : lecture publique, écriture admin
	categories := api.Group("/categories")
	{
		categories.GET("", product.GetAllCategories)
		categories.POST("", auth, middleware.RequireAdmin, product.CreateCategory)
	}

	// Products : lecture publique, écriture admin
	products := api.Group("/products")
	{
		products.GET("", product.GetAllProducts)
		products.GET("/search", product.SearchProducts)
		products.GET("/:id", product.GetProductByID)
		products.POST("", auth, middleware.RequireAdmin, product.CreateProduct)
		products.PUT("/:id", auth, middleware.RequireAdmin, product.UpdateProduct)
		products.DELETE("/:id", auth, middleware.RequireAdmin, product.DeleteProduct)
		products.POST("/:id/image", auth, middleware.RequireAdmin, product.UploadProductImage(cfg))
	}

	// Cart
	cart := api.Group("/cart", auth)
	{
		cart.POST("/add", user.AddToCart)
		cart.POST("/remove", user.RemoveFromCart)
		cart.POST("/delete", user.DeleteFromCart)
		cart.GET("/count/:userId", user.GetCartCount)
		cart.GET("/:userId", user.GetCart)
	}

	// Orders
	orders := api.Group("/orders", auth)
	{
		orders.POST("", user.PlaceOrder)
		orders.GET("", middleware.RequireAdmin, admin.GetAllOrders)
		orders.GET("/my-orders", user.GetMyOrders)
		orders.GET("/:id", user.GetOrderByID)
		orders.PUT("/:id/status", middleware.RequireAdmin, admin.UpdateOrderStatus)
	}

	// Payment bridge (callbacks du gateway, pas de bearer)
	razorpay := api.Group("/razorpay")
	{
		razorpay.POST("/create-order", payement.CreateRazorpayOrder)
		razorpay.POST("/verify-payment", payement.VerifyPayment)
	}
}
