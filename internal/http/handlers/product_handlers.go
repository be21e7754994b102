package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/grocery-tracker/grocery-tracker/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the caller's inventory
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromContext(r)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	// Owner is always taken from the caller identity; any owner value in the
	// payload is ignored.
	product, validationErrors := validateProductRequest(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := productRepo.Create(owner.UserID, product)
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List the caller's products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param search query string false "Case-insensitive substring match over name or SKU"
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromContext(r)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := repo.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	if filter.Category == "All Categories" {
		filter.Category = ""
	}

	products, err := productRepo.GetByOwner(owner.UserID, filter)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetLowStockProductsHandler godoc
// @Summary List the caller's products at or below their reorder level
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products/low-stock [get]
func GetLowStockProductsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromContext(r)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	products, err := productRepo.GetLowStock(owner.UserID)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Merges the supplied fields into the product; omitted fields keep their value
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductUpdateRequest true "Fields to update"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromContext(r)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")

	var req ProductUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	existing, err := productRepo.GetByID(owner.UserID, id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	merged, validationErrors := mergeProductUpdate(existing, req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}
	merged.UpdatedAt = time.Now().UTC()

	updated, err := productRepo.Update(owner.UserID, merged)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromContext(r)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")

	if err := productRepo.Delete(owner.UserID, id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
