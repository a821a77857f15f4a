package server

import (
	"errors"

	handler "resale-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

var errMissingIdentity = errors.New("missing X-User-ID header")

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.MarketServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(service)

	listings := router.Group("/listings")
	{
		listings.POST("", IdentityMiddleware, marketHandler.PublishListingHandler)
		listings.GET("/:listing_id", marketHandler.GetListingHandler)
		listings.GET("/:listing_id/bids", marketHandler.ListBidsHandler)
		listings.POST("/:listing_id/accept-bid", IdentityMiddleware, marketHandler.AcceptBidHandler)
	}

	bids := router.Group("/bids", IdentityMiddleware)
	{
		bids.POST("", marketHandler.PlaceBidHandler)
	}

	cart := router.Group("/cart", IdentityMiddleware)
	{
		cart.GET("", marketHandler.GetCartHandler)
		cart.POST("/add", marketHandler.AddToCartHandler)
		cart.POST("/remove", marketHandler.RemoveFromCartHandler)
	}

	router.POST("/checkout", IdentityMiddleware, marketHandler.CheckoutHandler)

	orders := router.Group("/orders", IdentityMiddleware)
	{
		orders.GET("", marketHandler.MyOrdersHandler)
		orders.GET("/seller", marketHandler.SellerOrdersHandler)
		orders.GET("/seller/analytics", marketHandler.SellerAnalyticsHandler)
		orders.PUT("/:order_id/confirm", marketHandler.ConfirmOrderHandler)
		orders.PUT("/:order_id/status", marketHandler.UpdateOrderStatusHandler)
		orders.PUT("/:order_id/cancel", marketHandler.CancelOrderHandler)
	}

	return router
}
