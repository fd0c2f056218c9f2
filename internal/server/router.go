package server

import (
	"auction-settlement/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
	}

	jobs := router.Group("/jobs")
	{
		jobs.POST("/close", auctionHandler.CloseAuctionsHandler)
		jobs.POST("/payments", auctionHandler.GeneratePaymentsHandler)
	}

	router.GET("/payments", auctionHandler.ListPaymentsHandler)

	return router
}
