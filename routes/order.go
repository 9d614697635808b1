package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hadiheib99/storefront-backend/config"
	orderControllers "github.com/hadiheib99/storefront-backend/controllers/order"
	"github.com/hadiheib99/storefront-backend/middleware"
	"github.com/hadiheib99/storefront-backend/stores"
)

// SetupOrderRoutes registers all "/orders/*" endpoints. All of them require
// a bearer token.
func SetupOrderRoutes(r *gin.Engine, cfg *config.Config, orders *stores.OrderStore) {
	group := r.Group("/orders")
	group.Use(middleware.ValidateToken(cfg))
	{
		group.POST("", orderControllers.CreateOrder(orders))
		group.GET("", orderControllers.GetAllOrders(orders))
		group.GET("/:id", orderControllers.GetOrderByID(orders))
		group.DELETE("/:id", orderControllers.DeleteOrder(orders))
		group.POST("/:id/products", orderControllers.AddProduct(orders))

		// websocket endpoint for real-time order updates
		group.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
