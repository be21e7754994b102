package repo

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when no product matches both the id and the
// owner. A foreign-owned id is deliberately indistinguishable from an id that
// does not exist at all.
var ErrProductNotFound = errors.New("product not found")

// ErrUserNotFound is returned when a user lookup misses.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicatedValueUnique is returned when an insert violates a unique
// constraint.
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")

// ErrEmptySale is returned when a sale is requested with no line items.
var ErrEmptySale = errors.New("sale must contain at least one item")

// SaleProductNotFoundError reports a sale line whose product reference does
// not resolve within the caller's inventory.
type SaleProductNotFoundError struct {
	ProductID string
}

func (e *SaleProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found in your inventory", e.ProductID)
}

// InsufficientStockError reports a sale line that requests more units than
// the product currently has.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available, %d requested",
		e.ProductName, e.Available, e.Requested)
}
