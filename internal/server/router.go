package server

import (
	"auction-marketplace/internal/session"
	handler "auction-marketplace/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(catalogService handler.CatalogServiceInterface, sessions *session.Store) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(catalogService, sessions)

	router.POST("/users", auctionHandler.RegisterHandler)
	router.POST("/sessions", auctionHandler.LoginHandler)
	router.GET("/items", auctionHandler.ListItemsHandler)
	router.GET("/history", auctionHandler.HistoryHandler)

	authed := router.Group("", auctionHandler.RequireSession)
	{
		authed.DELETE("/sessions", auctionHandler.LogoutHandler)
		authed.POST("/items", auctionHandler.AddItemHandler)
		authed.POST("/items/:index/bids", auctionHandler.PlaceBidHandler)
		authed.POST("/items/:index/watch", auctionHandler.WatchHandler)
		authed.POST("/settlements", auctionHandler.DeclareWinnersHandler)
	}

	me := router.Group("/me", auctionHandler.RequireSession)
	{
		me.GET("/bids", auctionHandler.MyBidsHandler)
		me.GET("/watchlist", auctionHandler.MyWatchlistHandler)
	}

	return router
}
