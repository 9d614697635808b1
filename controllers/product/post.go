package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadiheib99/storefront-backend/stores"
)

type CreateProductRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
	Category *string  `json:"category"`
}

// CreateProduct inserts a new product. Protected.
// URL: POST /products
func CreateProduct(store *stores.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		product, err := store.Create(req.Name, *req.Price, req.Category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
