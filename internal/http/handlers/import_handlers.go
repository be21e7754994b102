package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type csvRow struct {
	Name         string
	SKU          string
	Category     string
	Supplier     string
	Description  string
	Price        float64
	Cost         float64
	Quantity     int
	ReorderLevel int
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "sku", "category", "supplier", "price", "cost"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			Name:         field(record, "name"),
			SKU:          field(record, "sku"),
			Category:     field(record, "category"),
			Supplier:     field(record, "supplier"),
			Description:  field(record, "description"),
			Price:        parseFloat(field(record, "price")),
			Cost:         parseFloat(field(record, "cost")),
			Quantity:     parseInt(field(record, "quantity")),
			ReorderLevel: parseInt(field(record, "reorder_level")),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

func (row csvRow) toRequest() ProductRequest {
	price, cost := row.Price, row.Cost
	quantity, reorderLevel := row.Quantity, row.ReorderLevel
	return ProductRequest{
		Name:         row.Name,
		SKU:          row.SKU,
		Category:     row.Category,
		Supplier:     row.Supplier,
		Description:  row.Description,
		Price:        &price,
		Cost:         &cost,
		Quantity:     &quantity,
		ReorderLevel: &reorderLevel,
	}
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Bulk-creates products for the caller. Rows matching an existing SKU are skipped by default, or overwritten with mode=update.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromContext(r)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imported int
	var errorsList []ProductValidationError

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		product, rowErrs := validateProductRequest(rec.toRequest())
		if len(rowErrs) > 0 {
			errorsList = append(errorsList, ProductValidationError{
				Description: fmt.Sprintf("row %d: %s: %s", rowNum, rowErrs[0].Field, rowErrs[0].Description),
			})
			continue
		}

		existing, err := productRepo.GetBySKU(owner.UserID, rec.SKU)
		if err == nil {
			if mode == "skip" {
				errorsList = append(errorsList, ProductValidationError{
					Description: fmt.Sprintf("row %d: sku '%s' already exists", rowNum, rec.SKU),
				})
				continue
			}
			merged := existing
			merged.Name = product.Name
			merged.Category = product.Category
			merged.Supplier = product.Supplier
			merged.Description = product.Description
			merged.Price = product.Price
			merged.Cost = product.Cost
			merged.Quantity = product.Quantity
			merged.ReorderLevel = product.ReorderLevel
			merged.UpdatedAt = time.Now().UTC()
			if _, err := productRepo.Update(owner.UserID, merged); err != nil {
				errorsList = append(errorsList, ProductValidationError{
					Description: fmt.Sprintf("row %d: failed to update '%s'", rowNum, rec.SKU),
				})
				continue
			}
			imported++
			continue
		}

		now := time.Now().UTC()
		product.CreatedAt = now
		product.UpdatedAt = now
		if _, err := productRepo.Create(owner.UserID, product); err != nil {
			errorsList = append(errorsList, ProductValidationError{
				Description: fmt.Sprintf("row %d: %v", rowNum, err),
			})
			continue
		}
		imported++
	}

	err = writeJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}
