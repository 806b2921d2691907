package server

import (
	"net/http"
	"time"

	auth "stakex/internal/authService"
	bidding "stakex/internal/biddingService"
	product "stakex/internal/productService"
	user "stakex/internal/userService"
	"stakex/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Auth          *auth.AuthService
	Products      *product.ProductService
	Bidding       *bidding.BiddingService
	Users         *user.UserService
	MaxImageBytes int64
	Environment   string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svcs Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	authHandler := handler.NewAuthHandler(svcs.Auth)
	productHandler := handler.NewProductHandler(svcs.Products, svcs.MaxImageBytes)
	biddingHandler := handler.NewBiddingHandler(svcs.Bidding)
	userHandler := handler.NewUserHandler(svcs.Users)

	authed := RequireAuth(svcs.Auth)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": svcs.Environment,
		})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.RegisterHandler)
			authGroup.POST("/login", authHandler.LoginHandler)
			authGroup.GET("/me", authed, authHandler.MeHandler)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", productHandler.ListProductsHandler)
			posts.GET("/:id", productHandler.GetProductHandler)
			posts.GET("/:id/image", productHandler.GetProductImageHandler)

			posts.POST("", authed, productHandler.CreateProductHandler)
			posts.PUT("/:id", authed, productHandler.UpdateProductHandler)
			posts.DELETE("/:id", authed, productHandler.DeleteProductHandler)
		}

		ledger := api.Group("/product-bids")
		{
			ledger.GET("/:id", biddingHandler.GetBidsHandler)
			ledger.POST("/:id", authed, biddingHandler.AddBidHandler)
			ledger.PUT("/:id", authed, biddingHandler.ReplaceBidsHandler)
			ledger.DELETE("/:id/:index", authed, biddingHandler.RemoveBidHandler)
		}

		offers := api.Group("/bids")
		{
			offers.GET("", biddingHandler.ListOffersHandler)
			offers.POST("", authed, biddingHandler.PlaceOfferHandler)
			offers.PUT("/:id", authed, biddingHandler.ResolveOfferHandler)
		}

		account := api.Group("/user", authed)
		{
			account.GET("/cart", userHandler.GetCartHandler)
			account.POST("/cart", userHandler.AddToCartHandler)
			account.DELETE("/cart", userHandler.ClearCartHandler)
			account.DELETE("/cart/:productId", userHandler.RemoveFromCartHandler)

			account.GET("/history", userHandler.GetHistoryHandler)
			account.POST("/history", userHandler.AddOrderHandler)
			account.POST("/history/batch", userHandler.AddOrderBatchHandler)

			account.GET("/bids", userHandler.GetTrackedBidsHandler)
			account.POST("/bids", userHandler.TrackBidHandler)
			account.DELETE("/bids/:productId", userHandler.UntrackBidHandler)

			account.GET("/sell", userHandler.GetSellListingsHandler)
			account.POST("/sell", userHandler.ListForSaleHandler)
			account.PATCH("/sell/:productId", userHandler.UpdateAskingPriceHandler)
			account.DELETE("/sell/:productId", userHandler.DelistHandler)
		}
	}

	return router
}
