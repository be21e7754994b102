package handlers

import (
	"time"

	"github.com/grocery-tracker/grocery-tracker/internal/models"
)

// ProductRequest is the create payload. Quantity and reorder level are
// pointers so an absent field can be told apart from an explicit zero and
// given its default.
type ProductRequest struct {
	Name         string   `json:"name"`
	SKU          string   `json:"sku"`
	Category     string   `json:"category"`
	Supplier     string   `json:"supplier"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	Cost         *float64 `json:"cost"`
	Quantity     *int     `json:"quantity"`
	ReorderLevel *int     `json:"reorder_level"`
}

// ProductUpdateRequest carries a partial update; nil fields keep their
// current value.
type ProductUpdateRequest struct {
	Name         *string  `json:"name"`
	SKU          *string  `json:"sku"`
	Category     *string  `json:"category"`
	Supplier     *string  `json:"supplier"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Cost         *float64 `json:"cost"`
	Quantity     *int     `json:"quantity"`
	ReorderLevel *int     `json:"reorder_level"`
}

type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Category     string  `json:"category"`
	Supplier     string  `json:"supplier"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Cost         float64 `json:"cost"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorder_level"`
	LowStock     bool    `json:"low_stock"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Category:     p.Category,
		Supplier:     p.Supplier,
		Description:  p.Description,
		Price:        p.Price,
		Cost:         p.Cost,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		LowStock:     p.LowStock(),
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type SaleLineRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type SaleRequest struct {
	Items         []SaleLineRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
