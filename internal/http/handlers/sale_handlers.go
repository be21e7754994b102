package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grocery-tracker/grocery-tracker/internal/models"
	"github.com/grocery-tracker/grocery-tracker/internal/repo"
)

// CreateSaleHandler godoc
// @Summary Record a multi-item sale
// @Description Validates every line against the caller's inventory, then deducts stock and records the sale. All-or-nothing: a failing line leaves stock untouched.
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Sale line items and payment method"
// @Success 201 {object} models.Sale
// @Failure 400 {array} ProductValidationError
// @Failure 404 {object} map[string]string "Referenced product not in caller's inventory"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Router /sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromContext(r)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSaleRequest(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	lines := make([]repo.SaleLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = repo.SaleLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	sale, err := saleRepo.Process(owner.UserID, lines, req.PaymentMethod)
	if err != nil {
		var notFound *repo.SaleProductNotFoundError
		var insufficient *repo.InsufficientStockError
		switch {
		case errors.Is(err, repo.ErrEmptySale):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.As(err, &notFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"message": notFound.Error()})
		case errors.As(err, &insufficient):
			writeJSON(w, http.StatusConflict, map[string]string{"message": insufficient.Error()})
		default:
			http.Error(w, "could not record sale", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, sale)
}

// GetSalesHandler godoc
// @Summary List the caller's sales, most recent first
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Sale
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromContext(r)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	sales, err := saleRepo.GetByOwner(owner.UserID)
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}
	writeJSON(w, http.StatusOK, sales)
}
