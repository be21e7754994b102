package repo

import (
	"github.com/grocery-tracker/grocery-tracker/internal/models"
)

// ProductRepository defines the interface for product data operations.
// Every method takes the owner id first, so no implementation can forget the
// tenant filter.
type ProductRepository interface {
	Create(ownerID string, product models.Product) (models.Product, error)
	GetByOwner(ownerID string, pf ProductFilter) ([]models.Product, error)
	GetLowStock(ownerID string) ([]models.Product, error)
	GetByID(ownerID, id string) (models.Product, error)
	GetBySKU(ownerID, sku string) (models.Product, error)
	Update(ownerID string, product models.Product) (models.Product, error)
	Delete(ownerID, id string) error
}
