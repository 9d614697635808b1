package models

import "time"

type OrderStatus string

const (
	OrderStatusActive   OrderStatus = "active"   // order is still open
	OrderStatusComplete OrderStatus = "complete" // order has been finalized
)

type Order struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Status    OrderStatus    `gorm:"type:VARCHAR(20);default:'active';not null" json:"status"`
	Lines     []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// OrderProduct is a line item joining an order to a product with a quantity.
type OrderProduct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"-"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
