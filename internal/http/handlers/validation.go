package handlers

import (
	"strings"

	"github.com/grocery-tracker/grocery-tracker/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

const defaultReorderLevel = 10

// validateProductRequest checks a create payload and, when valid, returns the
// product with defaults applied. Quantity defaults to 0 and reorder level to
// 10 when absent.
func validateProductRequest(req ProductRequest) (models.Product, []ProductValidationError) {
	errs := []ProductValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "name", Description: "name is required"})
	}
	if strings.TrimSpace(req.SKU) == "" {
		errs = append(errs, ProductValidationError{Field: "sku", Description: "sku is required"})
	}
	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, ProductValidationError{Field: "category", Description: "category is required"})
	}
	if strings.TrimSpace(req.Supplier) == "" {
		errs = append(errs, ProductValidationError{Field: "supplier", Description: "supplier is required"})
	}
	if req.Price == nil {
		errs = append(errs, ProductValidationError{Field: "price", Description: "price is required"})
	} else if *req.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "price", Description: "price cannot be negative"})
	}
	if req.Cost == nil {
		errs = append(errs, ProductValidationError{Field: "cost", Description: "cost is required"})
	} else if *req.Cost < 0 {
		errs = append(errs, ProductValidationError{Field: "cost", Description: "cost cannot be negative"})
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "quantity", Description: "quantity cannot be negative"})
	}
	if req.ReorderLevel != nil && *req.ReorderLevel < 0 {
		errs = append(errs, ProductValidationError{Field: "reorder_level", Description: "reorder level cannot be negative"})
	}
	if len(errs) > 0 {
		return models.Product{}, errs
	}

	p := models.Product{
		Name:         req.Name,
		SKU:          req.SKU,
		Category:     req.Category,
		Supplier:     req.Supplier,
		Description:  req.Description,
		Price:        *req.Price,
		Cost:         *req.Cost,
		ReorderLevel: defaultReorderLevel,
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.ReorderLevel != nil {
		p.ReorderLevel = *req.ReorderLevel
	}
	return p, nil
}

// mergeProductUpdate applies the non-nil fields of a partial update onto the
// existing product, then re-validates the merged result against the create
// constraints.
func mergeProductUpdate(existing models.Product, req ProductUpdateRequest) (models.Product, []ProductValidationError) {
	merged := existing
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.SKU != nil {
		merged.SKU = *req.SKU
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.Supplier != nil {
		merged.Supplier = *req.Supplier
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Price != nil {
		merged.Price = *req.Price
	}
	if req.Cost != nil {
		merged.Cost = *req.Cost
	}
	if req.Quantity != nil {
		merged.Quantity = *req.Quantity
	}
	if req.ReorderLevel != nil {
		merged.ReorderLevel = *req.ReorderLevel
	}

	validated, errs := validateProductRequest(ProductRequest{
		Name:         merged.Name,
		SKU:          merged.SKU,
		Category:     merged.Category,
		Supplier:     merged.Supplier,
		Description:  merged.Description,
		Price:        &merged.Price,
		Cost:         &merged.Cost,
		Quantity:     &merged.Quantity,
		ReorderLevel: &merged.ReorderLevel,
	})
	if len(errs) > 0 {
		return models.Product{}, errs
	}
	validated.ID = existing.ID
	validated.OwnerID = existing.OwnerID
	validated.CreatedAt = existing.CreatedAt
	validated.UpdatedAt = existing.UpdatedAt
	return validated, nil
}

func validateSaleRequest(req SaleRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if len(req.Items) == 0 {
		errs = append(errs, ProductValidationError{Field: "items", Description: "sale must contain at least one item"})
		return errs
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			errs = append(errs, ProductValidationError{Field: "items.product_id", Description: "product_id is required"})
		}
		if item.Quantity <= 0 {
			errs = append(errs, ProductValidationError{Field: "items.quantity", Description: "quantity must be greater than zero"})
		}
		if item.UnitPrice < 0 {
			errs = append(errs, ProductValidationError{Field: "items.unit_price", Description: "unit price cannot be negative"})
		}
	}
	return errs
}
