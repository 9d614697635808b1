package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hadiheib99/storefront-backend/config"
	productcontroller "github.com/hadiheib99/storefront-backend/controllers/product"
	"github.com/hadiheib99/storefront-backend/middleware"
	"github.com/hadiheib99/storefront-backend/stores"
)

// SetupProductRoutes registers all "/products/*" endpoints. Browsing the
// catalog is public; writes and the export require a bearer token.
func SetupProductRoutes(r *gin.Engine, cfg *config.Config, products *stores.ProductStore) {
	r.GET("/products", productcontroller.GetProducts(products))
	r.GET("/products/:id", productcontroller.GetProductByID(products))

	protected := r.Group("/products")
	protected.Use(middleware.ValidateToken(cfg))
	{
		protected.POST("", productcontroller.CreateProduct(products))
		protected.DELETE("/:id", productcontroller.DeleteProduct(products))
		protected.GET("/export", productcontroller.ExportProductsToExcel(products))
	}
}
