package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hadiheib99/storefront-backend/models"
	"github.com/hadiheib99/storefront-backend/stores"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Status string `json:"status"` // optional, defaults to "active"
}

type AddProductRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// mapOrderStatus validates a client-supplied status string. Empty means
// "use the default".
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "":
		return "", nil
	case string(models.OrderStatusActive):
		return models.OrderStatusActive, nil
	case string(models.OrderStatusComplete):
		return models.OrderStatusComplete, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// -------- Handlers --------

// CreateOrder opens an order for a user. Protected.
// URL: POST /orders
func CreateOrder(store *stores.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := store.Create(req.UserID, status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrders lists every order. Protected.
// URL: GET /orders
func GetAllOrders(store *stores.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID returns one order. Protected.
// URL param: /orders/:id
func GetOrderByID(store *stores.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		order, err := store.Get(uint(id))
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// AddProduct appends a line item to an order. Protected.
// URL param: POST /orders/:id/products
func AddProduct(store *stores.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req AddProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and quantity are required"})
			return
		}
		if req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive number"})
			return
		}

		line, err := store.AddProduct(uint(orderID), req.ProductID, req.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order_product": line})
	}
}

// CurrentByUser returns the user's most recent active order. Protected.
// URL param: GET /users/:id/orders/current
func CurrentByUser(store *stores.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		order, err := store.CurrentByUser(uint(userID))
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// DeleteOrder removes an order and its lines. Protected, idempotent.
// URL param: DELETE /orders/:id
func DeleteOrder(store *stores.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		if err := store.Delete(uint(id)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
