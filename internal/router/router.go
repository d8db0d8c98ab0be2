package router

import (
	"fmt"
	"strings"

	"github.com/vastra-store/internal/cache"
	"github.com/vastra-store/internal/config"
	publichandlers "github.com/vastra-store/internal/http/handlers/public"
	"github.com/vastra-store/internal/logger"
	"github.com/vastra-store/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the storefront API.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "vastra"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Product images are served straight from disk.
	r.Static("/images", "./images")

	apiV1 := r.Group("/api/v1")
	{
		// Browsing needs no account.
		public := apiV1.Group("/public")
		{
			public.GET("/products", handler.GetProducts)
			public.GET("/products/featured", handler.GetFeaturedProducts)
			public.GET("/products/:slug", handler.GetProduct)
			public.GET("/reviews/:product_id", handler.GetProductReviews)
			public.GET("/categories", handler.GetCategories)
			public.GET("/categories/:slug", handler.GetCategory)
		}

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", handler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), handler.UserLogin)
		}

		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", handler.GetProfile)
			user.PUT("/me/profile", handler.UpdateProfile)
			user.PUT("/me/password", handler.ChangePassword)

			user.GET("/cart", handler.GetCart)
			user.POST("/cart/items", handler.AddCartItem)
			user.PUT("/cart/items", handler.SetCartItemQuantity)
			user.DELETE("/cart/items/:product_id", handler.DeleteCartItem)
			user.DELETE("/cart", handler.ClearCart)

			user.GET("/wishlist", handler.GetWishlist)
			user.POST("/wishlist/items", handler.AddWishlistItem)
			user.DELETE("/wishlist/items/:product_id", handler.RemoveWishlistItem)

			user.GET("/addresses", handler.ListAddresses)
			user.POST("/addresses", handler.CreateAddress)
			user.PUT("/addresses/:id", handler.UpdateAddress)
			user.DELETE("/addresses/:id", handler.DeleteAddress)
			user.POST("/addresses/:id/default", handler.SetDefaultAddress)

			user.POST("/orders/preview", handler.PreviewCheckout)
			user.POST("/orders", handler.CreateOrder)
			user.GET("/orders", handler.ListOrders)
			user.GET("/orders/:id", handler.GetOrder)
			user.POST("/orders/:id/cancel", handler.CancelOrder)

			user.POST("/payments/razorpay/order", handler.CreateRazorpayOrder)
			user.POST("/payments/razorpay/verify", handler.VerifyRazorpayPayment)

			user.POST("/products/:product_id/reviews", handler.SubmitReview)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
