package repo

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/grocery-tracker/grocery-tracker/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
// It shares the product repository's lock for the check-and-decrement so a
// concurrent sale cannot slip between the availability check and the write.
type InMemorySaleRepository struct {
	mu       sync.RWMutex
	sales    []models.Sale
	products *InMemoryProductRepository
}

func NewInMemorySaleRepository(products *InMemoryProductRepository) *InMemorySaleRepository {
	return &InMemorySaleRepository{
		sales:    []models.Sale{},
		products: products,
	}
}

// Process validates every line, then applies all decrements and records the
// sale. A failing line leaves stock and the ledger untouched.
func (r *InMemorySaleRepository) Process(ownerID string, lines []SaleLine, paymentMethod string) (models.Sale, error) {
	if len(lines) == 0 {
		return models.Sale{}, ErrEmptySale
	}

	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	items := make([]models.SaleItem, 0, len(lines))
	total := 0.0
	// Lines referencing the same product draw down a shared remainder, so a
	// sale can never pass validation by checking each line against the
	// initial quantity independently.
	remaining := map[string]int{}
	for _, line := range lines {
		p, err := r.products.getByIDLocked(ownerID, line.ProductID)
		if err != nil {
			return models.Sale{}, &SaleProductNotFoundError{ProductID: line.ProductID}
		}
		if _, ok := remaining[p.ID]; !ok {
			remaining[p.ID] = p.Quantity
		}
		if remaining[p.ID] < line.Quantity {
			return models.Sale{}, &InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Available:   remaining[p.ID],
				Requested:   line.Quantity,
			}
		}
		remaining[p.ID] -= line.Quantity

		items = append(items, models.SaleItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
		total += float64(line.Quantity) * line.UnitPrice
	}

	now := time.Now().UTC()
	for _, line := range lines {
		p, _ := r.products.getByIDLocked(ownerID, line.ProductID)
		p.Quantity -= line.Quantity
		p.UpdatedAt = now
		if _, err := r.products.updateLocked(ownerID, p); err != nil {
			return models.Sale{}, err
		}
	}

	sale := models.Sale{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
	}

	r.mu.Lock()
	r.sales = append(r.sales, sale)
	r.mu.Unlock()

	return sale, nil
}

// GetByOwner returns the owner's sales, most recent first, with the current
// product SKU attached to items whose product still exists.
func (r *InMemorySaleRepository) GetByOwner(ownerID string) ([]models.Sale, error) {
	r.mu.RLock()
	var sales []models.Sale
	for i := len(r.sales) - 1; i >= 0; i-- {
		s := r.sales[i]
		if s.OwnerID != ownerID {
			continue
		}
		items := make([]models.SaleItem, len(s.Items))
		copy(items, s.Items)
		s.Items = items
		sales = append(sales, s)
	}
	r.mu.RUnlock()

	// Annotate outside the ledger lock; the product lookup takes its own.
	for i := range sales {
		for j := range sales[i].Items {
			item := &sales[i].Items[j]
			if p, err := r.products.GetByID(ownerID, item.ProductID); err == nil {
				item.ProductSKU = p.SKU
			}
		}
	}
	return sales, nil
}

func (r *InMemorySaleRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = []models.Sale{}
}
