package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hadiheib99/storefront-backend/config"
	"github.com/hadiheib99/storefront-backend/stores"
)

// SetupRoutes is the single entry point that wires up the user, product,
// and order route groups against their stores.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userStore := stores.NewUserStore(db, cfg)
	productStore := stores.NewProductStore(db)
	orderStore := stores.NewOrderStore(db)

	SetupUserRoutes(r, cfg, userStore, orderStore)
	SetupProductRoutes(r, cfg, productStore)
	SetupOrderRoutes(r, cfg, orderStore)
}
