package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grocery-tracker/grocery-tracker/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

// Process runs the whole sale in a single transaction. Phase one locks and
// validates every referenced product; phase two applies the decrements and
// inserts the sale. Any validation failure rolls the transaction back, so no
// stock is lost on a partially valid request.
func (r *PostgresSaleRepository) Process(ownerID string, lines []SaleLine, paymentMethod string) (models.Sale, error) {
	if len(lines) == 0 {
		return models.Sale{}, ErrEmptySale
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	items := make([]models.SaleItem, 0, len(lines))
	total := 0.0
	// Lines referencing the same product draw down a shared remainder; the
	// locked quantity is read once and must cover the sum of those lines.
	remaining := map[string]int{}
	for _, line := range lines {
		var name string
		var available int
		err := tx.QueryRowContext(ctx,
			`SELECT name, quantity FROM products WHERE id = $1 AND owner_id = $2 FOR UPDATE`,
			line.ProductID, ownerID).Scan(&name, &available)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sale{}, &SaleProductNotFoundError{ProductID: line.ProductID}
		}
		if err != nil {
			return models.Sale{}, fmt.Errorf("failed to lock product %s: %w", line.ProductID, err)
		}
		if _, ok := remaining[line.ProductID]; !ok {
			remaining[line.ProductID] = available
		}
		if remaining[line.ProductID] < line.Quantity {
			return models.Sale{}, &InsufficientStockError{
				ProductID:   line.ProductID,
				ProductName: name,
				Available:   remaining[line.ProductID],
				Requested:   line.Quantity,
			}
		}
		remaining[line.ProductID] -= line.Quantity

		items = append(items, models.SaleItem{
			ProductID:   line.ProductID,
			ProductName: name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
		total += float64(line.Quantity) * line.UnitPrice
	}

	now := time.Now().UTC()
	for _, line := range lines {
		_, err := tx.ExecContext(ctx,
			`UPDATE products SET quantity = quantity - $1, updated_at = $2 WHERE id = $3 AND owner_id = $4`,
			line.Quantity, now, line.ProductID, ownerID)
		if err != nil {
			return models.Sale{}, fmt.Errorf("failed to decrement stock for %s: %w", line.ProductID, err)
		}
	}

	sale := models.Sale{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sales (id, owner_id, total_amount, payment_method, created_at) VALUES ($1, $2, $3, $4, $5)`,
		sale.ID, sale.OwnerID, sale.TotalAmount, sale.PaymentMethod, sale.CreatedAt)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to insert sale: %w", err)
	}
	for i, item := range sale.Items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sale_items (sale_id, position, product_id, product_name, quantity, unit_price) VALUES ($1, $2, $3, $4, $5, $6)`,
			sale.ID, i, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice)
		if err != nil {
			return models.Sale{}, fmt.Errorf("failed to insert sale item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Sale{}, fmt.Errorf("failed to commit sale: %w", err)
	}
	return sale, nil
}

// GetByOwner returns the owner's sales, most recent first. Items carry the
// referenced product's current SKU where the product still exists.
func (r *PostgresSaleRepository) GetByOwner(ownerID string) ([]models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, total_amount, payment_method, created_at FROM sales WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.TotalAmount, &s.PaymentMethod, &s.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sales {
		items, err := r.getItems(ctx, sales[i].ID)
		if err != nil {
			return nil, err
		}
		sales[i].Items = items
	}
	return sales, nil
}

func (r *PostgresSaleRepository) getItems(ctx context.Context, saleID string) ([]models.SaleItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT si.product_id, si.product_name, si.quantity, si.unit_price, COALESCE(p.sku, '')
		FROM sale_items si
		LEFT JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = $1
		ORDER BY si.position`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.SaleItem
	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.ProductSKU); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
