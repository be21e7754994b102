package repo

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/grocery-tracker/grocery-tracker/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the handler test suites.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Category != "" && p.Category != pf.Category {
		return false
	}
	if pf.Search != "" {
		needle := strings.ToLower(pf.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.SKU), needle) {
			return false
		}
	}
	return true
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(ownerID string, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = uuid.NewString()
	product.OwnerID = ownerID
	r.products = append(r.products, product)
	return product, nil
}

// GetByOwner retrieves the owner's products, most recently created first.
func (r *InMemoryProductRepository) GetByOwner(ownerID string, pf ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for i := len(r.products) - 1; i >= 0; i-- {
		p := r.products[i]
		if p.OwnerID == ownerID && matchesFilter(p, pf) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetLowStock retrieves the owner's products at or below their reorder level.
func (r *InMemoryProductRepository) GetLowStock(ownerID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for i := len(r.products) - 1; i >= 0; i-- {
		p := r.products[i]
		if p.OwnerID == ownerID && p.LowStock() {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetByID retrieves a product matching both id and owner.
func (r *InMemoryProductRepository) GetByID(ownerID, id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getByIDLocked(ownerID, id)
}

func (r *InMemoryProductRepository) getByIDLocked(ownerID, id string) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetBySKU retrieves the owner's most recently created product with the given
// SKU. SKUs carry no uniqueness constraint.
func (r *InMemoryProductRepository) GetBySKU(ownerID, sku string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.products) - 1; i >= 0; i-- {
		p := r.products[i]
		if p.OwnerID == ownerID && p.SKU == sku {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product matching both id and owner.
func (r *InMemoryProductRepository) Update(ownerID string, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateLocked(ownerID, product)
}

func (r *InMemoryProductRepository) updateLocked(ownerID string, product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID && p.OwnerID == ownerID {
			product.OwnerID = ownerID
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product matching both id and owner.
func (r *InMemoryProductRepository) Delete(ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
