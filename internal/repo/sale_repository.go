package repo

import (
	"github.com/grocery-tracker/grocery-tracker/internal/models"
)

// SaleLine is one requested line item of a sale: the product to sell, how
// many units, and the caller-supplied point-of-sale unit price.
type SaleLine struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// SaleRepository is the append-only ledger of completed sales.
//
// Process validates every line against the owner's inventory first and only
// then applies the stock decrements and persists the sale, so a failing line
// never leaves earlier lines partially deducted. Implementations must make
// the check-and-decrement atomic against concurrent sales of the same
// product.
type SaleRepository interface {
	Process(ownerID string, lines []SaleLine, paymentMethod string) (models.Sale, error)
	GetByOwner(ownerID string) ([]models.Sale, error)
}
