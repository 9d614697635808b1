package stores

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hadiheib99/storefront-backend/models"
)

// OrderStore owns the orders and order_products tables. Referential
// integrity (order and product ids on a line, user id on an order) is
// backstopped by the database's foreign keys.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// List returns all orders ordered by id ascending.
func (s *OrderStore) List() ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.db.Order("id asc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("could not list orders: %w", err)
	}
	return orders, nil
}

// Get returns one order by id.
func (s *OrderStore) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("could not find order %d: %w", id, err)
	}
	return &order, nil
}

// Create inserts an order for the user. Status defaults to active when
// empty.
func (s *OrderStore) Create(userID uint, status models.OrderStatus) (*models.Order, error) {
	if status == "" {
		status = models.OrderStatusActive
	}
	order := models.Order{
		UserID: userID,
		Status: status,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("could not create order for user %d: %w", userID, err)
	}
	return &order, nil
}

// CurrentByUser returns the most recent active order for the user.
func (s *OrderStore) CurrentByUser(userID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Where("user_id = ? AND status = ?", userID, models.OrderStatusActive).
		Order("id desc").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no active order for user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("could not get current order for user %d: %w", userID, err)
	}
	return &order, nil
}

// AddProduct appends a line item to an order. Quantity must be positive;
// the foreign keys reject unknown order or product ids.
func (s *OrderStore) AddProduct(orderID, productID uint, quantity int) (*models.OrderProduct, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("could not add product %d to order %d: quantity must be positive", productID, orderID)
	}
	line := models.OrderProduct{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.db.Omit(clause.Associations).Create(&line).Error; err != nil {
		return nil, fmt.Errorf("could not add product %d to order %d: %w", productID, orderID, err)
	}
	return &line, nil
}

// Delete removes the order and, via the FK cascade, its lines. Deleting an
// absent id is not an error.
func (s *OrderStore) Delete(id uint) error {
	if err := s.db.Delete(&models.Order{}, id).Error; err != nil {
		return fmt.Errorf("could not delete order %d: %w", id, err)
	}
	return nil
}
