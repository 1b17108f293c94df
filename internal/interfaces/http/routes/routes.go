// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires all storefront API routes under the given group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, client *commerce.Client, cfg *config.Config) {
	logger := newLogger(cfg)
	calculator := pricing.NewCalculator(logger)

	setupAuthRoutes(rg, client, cfg)
	setupCatalogRoutes(rg, client, cfg)
	setupCartRoutes(rg, client, calculator, cfg)
	setupCheckoutRoutes(rg, client, calculator, cfg, logger)
	setupOrderRoutes(rg, client, cfg)
	setupWishlistRoutes(rg, db, client, cfg)
	setupRestockRoutes(rg, db, redisClient, client, cfg)
	setupAffiliateRoutes(rg, db, redisClient, cfg)
	setupSessionRoutes(rg, redisClient, cfg)
	setupBlogRoutes(rg, client, cfg)
}

// setupAuthRoutes sets up session token routes
func setupAuthRoutes(rg *gin.RouterGroup, client *commerce.Client, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(client, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/session", authHandler.CreateSession)
		auth.POST("/refresh", authHandler.RefreshSession)
	}
}

// setupCatalogRoutes sets up product listing and detail routes
func setupCatalogRoutes(rg *gin.RouterGroup, client *commerce.Client, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(client, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:handle", catalogHandler.GetProduct)
	}
}

// setupCartRoutes sets up cart routes, usable with or without a session
func setupCartRoutes(rg *gin.RouterGroup, client *commerce.Client, calculator *pricing.Calculator, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(client, calculator, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:id", cartHandler.UpdateItem)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
	}
}

// setupCheckoutRoutes sets up the checkout aggregation route
func setupCheckoutRoutes(rg *gin.RouterGroup, client *commerce.Client, calculator *pricing.Calculator, cfg *config.Config, logger *logrus.Logger) {
	checkoutHandler := handlers.NewCheckoutHandler(client, calculator, cfg, logger)

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		checkout.GET("", checkoutHandler.GetCheckoutPage)
		checkout.POST("/complete", checkoutHandler.CompleteCheckout)
	}
}

// setupOrderRoutes sets up order history routes, all authenticated
func setupOrderRoutes(rg *gin.RouterGroup, client *commerce.Client, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(client, cfg)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.DownloadReceipt)
	}
}

// setupWishlistRoutes sets up wishlist routes, all authenticated
func setupWishlistRoutes(rg *gin.RouterGroup, db *gorm.DB, client *commerce.Client, cfg *config.Config) {
	wishlistHandler := handlers.NewWishlistHandler(db, client, cfg)

	wishlist := rg.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware(cfg))
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("", wishlistHandler.AddToWishlist)
		wishlist.DELETE("/:id", wishlistHandler.RemoveFromWishlist)
		wishlist.DELETE("", wishlistHandler.ClearWishlist)
	}
}

// setupRestockRoutes sets up restock subscription routes
func setupRestockRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, client *commerce.Client, cfg *config.Config) {
	restockHandler := handlers.NewRestockHandler(db, redisClient, client, cfg)

	rg.POST("/restock-subscriptions", restockHandler.Subscribe)
}

// setupAffiliateRoutes sets up affiliate tracking routes
func setupAffiliateRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	affiliateHandler := handlers.NewAffiliateHandler(db, redisClient, cfg)

	affiliate := rg.Group("/affiliate")
	{
		affiliate.GET("/track", affiliateHandler.TrackClick)
		affiliate.GET("/share-link", affiliateHandler.ShareLink)
	}
}

// setupSessionRoutes sets up session preference routes
func setupSessionRoutes(rg *gin.RouterGroup, redisClient *redis.Client, cfg *config.Config) {
	sessionHandler := handlers.NewSessionHandler(redisClient, cfg)

	session := rg.Group("/session")
	{
		session.GET("/preferences", sessionHandler.GetPreferences)
		session.PUT("/preferences", sessionHandler.UpdatePreferences)
		session.DELETE("/preferences", sessionHandler.ClearPreferences)
	}
}

// setupBlogRoutes sets up blog proxy routes
func setupBlogRoutes(rg *gin.RouterGroup, client *commerce.Client, cfg *config.Config) {
	blogHandler := handlers.NewBlogHandler(client, cfg)

	blog := rg.Group("/blog")
	{
		blog.GET("", blogHandler.ListPosts)
		blog.GET("/:slug", blogHandler.GetPost)
	}
}

// newLogger builds the application logger shared by handlers and services
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
