package models

import "time"

// Product represents a grocery product owned by a single user.
// OwnerID is set once at creation and scopes every query and mutation.
type Product struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"-"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Category     string    `json:"category"`
	Supplier     string    `json:"supplier"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Cost         float64   `json:"cost"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LowStock reports whether the live quantity has fallen to or below
// the reorder threshold. Derived, never stored.
func (p Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}
