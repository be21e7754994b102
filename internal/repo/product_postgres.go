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

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, owner_id, name, sku, category, supplier, description, price, cost, quantity, reorder_level, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.SKU, &p.Category, &p.Supplier,
		&p.Description, &p.Price, &p.Cost, &p.Quantity, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepository) Create(ownerID string, p models.Product) (models.Product, error) {
	p.ID = uuid.NewString()
	p.OwnerID = ownerID
	query := `INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, p.ID, p.OwnerID, p.Name, p.SKU, p.Category, p.Supplier,
		p.Description, p.Price, p.Cost, p.Quantity, p.ReorderLevel, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetByOwner(ownerID string, pf ProductFilter) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE owner_id = $1`
	args := []any{ownerID}
	argIdx := 2

	if pf.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, pf.Category)
		argIdx++
	}
	if pf.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+pf.Search+"%")
	}
	query += " ORDER BY created_at DESC"

	return r.queryProducts(query, args...)
}

func (r *PostgresProductRepository) GetLowStock(ownerID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE owner_id = $1 AND quantity <= reorder_level ORDER BY created_at DESC`
	return r.queryProducts(query, ownerID)
}

func (r *PostgresProductRepository) GetByID(ownerID, id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetBySKU(ownerID, sku string) (models.Product, error) {
	// SKUs are not unique; take the most recent match.
	query := `SELECT ` + productColumns + ` FROM products
		WHERE owner_id = $1 AND sku = $2 ORDER BY created_at DESC LIMIT 1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, ownerID, sku))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(ownerID string, p models.Product) (models.Product, error) {
	query := `UPDATE products
		SET name = $1, sku = $2, category = $3, supplier = $4, description = $5,
			price = $6, cost = $7, quantity = $8, reorder_level = $9, updated_at = $10
		WHERE id = $11 AND owner_id = $12`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.SKU, p.Category, p.Supplier, p.Description,
		p.Price, p.Cost, p.Quantity, p.ReorderLevel, p.UpdatedAt, p.ID, ownerID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	p.OwnerID = ownerID
	return p, nil
}

func (r *PostgresProductRepository) Delete(ownerID, id string) error {
	query := `DELETE FROM products WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) queryProducts(query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
