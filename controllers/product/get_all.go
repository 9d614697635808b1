package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadiheib99/storefront-backend/stores"
)

// GetProducts returns the whole catalog. Public.
// URL: GET /products
func GetProducts(store *stores.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
