package models

import "time"

// Sale is an immutable record of a completed multi-item sale.
// It is created exactly once by the sale ledger and never updated or deleted.
type Sale struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"-"`
	Items         []SaleItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SaleItem is one line of a sale. ProductName snapshots the product's name
// at the time of sale; UnitPrice is the caller-supplied point-of-sale price,
// not the catalog price.
type SaleItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`

	// ProductSKU is filled on reads from the referenced product's current
	// record when it still exists. Display only, never persisted.
	ProductSKU string `json:"product_sku,omitempty"`
}
