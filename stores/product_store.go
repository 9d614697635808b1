package stores

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hadiheib99/storefront-backend/models"
)

// ProductStore owns the products table. Prices live in a numeric(10,2)
// column; input is normalized to two decimal places before it is stored so
// that reads round-trip the written value exactly.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// List returns all products ordered by id ascending.
func (s *ProductStore) List() ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	return products, nil
}

// Get returns one product by id.
func (s *ProductStore) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("could not find product %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a product. Category is optional and stored as NULL when
// absent.
func (s *ProductStore) Create(name string, price float64, category *string) (*models.Product, error) {
	product := models.Product{
		Name:     name,
		Price:    decimal.NewFromFloat(price).Round(2).InexactFloat64(),
		Category: category,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("could not create product %s: %w", name, err)
	}
	return &product, nil
}

// Delete removes the product. Deleting an absent id is not an error.
func (s *ProductStore) Delete(id uint) error {
	if err := s.db.Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("could not delete product %d: %w", id, err)
	}
	return nil
}
