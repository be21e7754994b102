package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	handler "github.com/grocery-tracker/grocery-tracker/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)

	w := createProduct(sampleProduct("Apples", "FRU001"), token)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.ID == "" {
		t.Error("expected a generated id")
	}
	if resp.Name != "Apples" {
		t.Errorf("expected name 'Apples', got %v", resp.Name)
	}
	if resp.Quantity != 25 {
		t.Errorf("expected quantity 25, got %v", resp.Quantity)
	}
	// Reorder level was absent, so it gets the default.
	if resp.ReorderLevel != 10 {
		t.Errorf("expected reorder level 10, got %v", resp.ReorderLevel)
	}
	if resp.LowStock {
		t.Error("expected low_stock false for quantity 25 with reorder level 10")
	}
}

func TestCreateProductHandler_DefaultsWhenAbsent(t *testing.T) {
	t.Cleanup(clearAll)

	p := sampleProduct("Milk", "DAI001")
	p.Quantity = nil

	w := createProduct(p, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Quantity != 0 {
		t.Errorf("expected quantity default 0, got %d", resp.Quantity)
	}
	if resp.ReorderLevel != 10 {
		t.Errorf("expected reorder level default 10, got %d", resp.ReorderLevel)
	}
	if !resp.LowStock {
		t.Error("quantity 0 with reorder level 10 must be low stock")
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)

	tests := []struct {
		name          string
		payload       handler.ProductRequest
		expectedField string
	}{
		{
			name: "missing name",
			payload: handler.ProductRequest{
				SKU: "X001", Category: "Fruits", Supplier: "Fresh Farms",
				Price: floatPtr(10), Cost: floatPtr(5),
			},
			expectedField: "name",
		},
		{
			name: "missing price",
			payload: handler.ProductRequest{
				Name: "Apples", SKU: "X001", Category: "Fruits", Supplier: "Fresh Farms",
				Cost: floatPtr(5),
			},
			expectedField: "price",
		},
		{
			name: "negative cost",
			payload: handler.ProductRequest{
				Name: "Apples", SKU: "X001", Category: "Fruits", Supplier: "Fresh Farms",
				Price: floatPtr(10), Cost: floatPtr(-1),
			},
			expectedField: "cost",
		},
		{
			name: "negative quantity",
			payload: handler.ProductRequest{
				Name: "Apples", SKU: "X001", Category: "Fruits", Supplier: "Fresh Farms",
				Price: floatPtr(10), Cost: floatPtr(5), Quantity: intPtr(-1),
			},
			expectedField: "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(tt.payload, token)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.expectedField) {
				t.Errorf("expected error mentioning %q, got %s", tt.expectedField, w.Body.String())
			}
		})
	}
}

func TestCreateProductHandler_DuplicateSKUAllowed(t *testing.T) {
	t.Cleanup(clearAll)

	if w := createProduct(sampleProduct("Apples", "SHARED"), token); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	// SKU uniqueness is deliberately not enforced.
	if w := createProduct(sampleProduct("Pears", "SHARED"), token); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for duplicate sku, got %d", w.Code)
	}
}

func TestGetProductsHandler_FilterAndSearch(t *testing.T) {
	t.Cleanup(clearAll)

	createProduct(sampleProduct("Apples", "FRU001"), token)
	milk := sampleProduct("Milk", "DAI001")
	milk.Category = "Dairy"
	createProduct(milk, token)

	w := authRequest(http.MethodGet, "/products?category=Dairy", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp) != 1 || resp[0].Name != "Milk" {
		t.Errorf("expected only Milk in Dairy, got %+v", resp)
	}

	w = authRequest(http.MethodGet, "/products?search=fru0", nil, token)
	resp = nil
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp) != 1 || resp[0].SKU != "FRU001" {
		t.Errorf("expected sku search match, got %+v", resp)
	}
}

func TestGetProductsHandler_TenantIsolation(t *testing.T) {
	t.Cleanup(clearAll)

	createProduct(sampleProduct("Apples", "FRU001"), token)

	w := authRequest(http.MethodGet, "/products", nil, otherToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp) != 0 {
		t.Errorf("expected other tenant to see no products, got %d", len(resp))
	}
}

func TestGetLowStockProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)

	low := sampleProduct("Bread", "BAK001")
	low.Quantity = intPtr(5)
	low.ReorderLevel = intPtr(10)
	createProduct(low, token)
	createProduct(sampleProduct("Apples", "FRU001"), token)

	w := authRequest(http.MethodGet, "/products/low-stock", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp) != 1 || resp[0].Name != "Bread" {
		t.Errorf("expected only Bread low on stock, got %+v", resp)
	}
}

func TestUpdateProductHandler_PartialMerge(t *testing.T) {
	t.Cleanup(clearAll)

	w := createProduct(sampleProduct("Apples", "FRU001"), token)
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = authRequest(http.MethodPut, "/products/"+created.ID,
		handler.ProductUpdateRequest{Price: floatPtr(60)}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.Price != 60 {
		t.Errorf("expected price 60, got %v", updated.Price)
	}
	// Untouched fields keep their values.
	if updated.Name != "Apples" || updated.Quantity != 25 {
		t.Errorf("expected merge to preserve other fields, got %+v", updated)
	}
}

func TestUpdateProductHandler_InvalidMerge(t *testing.T) {
	t.Cleanup(clearAll)

	w := createProduct(sampleProduct("Apples", "FRU001"), token)
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = authRequest(http.MethodPut, "/products/"+created.ID,
		handler.ProductUpdateRequest{Name: strPtr("  ")}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", w.Code)
	}
}

func TestUpdateProductHandler_ForeignOwnerIsNotFound(t *testing.T) {
	t.Cleanup(clearAll)

	w := createProduct(sampleProduct("Apples", "FRU001"), token)
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = authRequest(http.MethodPut, "/products/"+created.ID,
		handler.ProductUpdateRequest{Price: floatPtr(1)}, otherToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign-owned id, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)

	w := createProduct(sampleProduct("Apples", "FRU001"), token)
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	// Foreign tenant gets NotFound and the record survives.
	if w := authRequest(http.MethodDelete, "/products/"+created.ID, nil, otherToken); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign delete, got %d", w.Code)
	}

	if w := authRequest(http.MethodDelete, "/products/"+created.ID, nil, token); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	if w := authRequest(http.MethodDelete, "/products/"+created.ID, nil, token); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestProductsHandler_RequiresAuthentication(t *testing.T) {
	if w := authRequest(http.MethodGet, "/products", nil, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if w := authRequest(http.MethodGet, "/products", nil, "bogus-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with invalid token, got %d", w.Code)
	}
}
