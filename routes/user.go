package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hadiheib99/storefront-backend/config"
	orderControllers "github.com/hadiheib99/storefront-backend/controllers/order"
	userControllers "github.com/hadiheib99/storefront-backend/controllers/user"
	"github.com/hadiheib99/storefront-backend/middleware"
	"github.com/hadiheib99/storefront-backend/stores"
)

// SetupUserRoutes registers all "/users/*" endpoints. Signup and login are
// public; everything else requires a bearer token.
func SetupUserRoutes(r *gin.Engine, cfg *config.Config, users *stores.UserStore, orders *stores.OrderStore) {
	r.POST("/users", userControllers.CreateUser(users, cfg))
	r.POST("/users/authenticate", userControllers.AuthenticateUser(users, cfg))

	protected := r.Group("/users")
	protected.Use(middleware.ValidateToken(cfg))
	{
		protected.GET("", userControllers.GetAllUsers(users))
		protected.GET("/:id", userControllers.GetUserByID(users))
		protected.DELETE("/:id", userControllers.DeleteUser(users))
		protected.GET("/:id/orders/current", orderControllers.CurrentByUser(orders))
	}
}
