package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresStatsRepository struct {
	db *sql.DB
}

func NewPostgresStatsRepository(db *sql.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) GetDashboardStats(ownerID string) (DashboardStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s DashboardStats

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE owner_id = $1`, ownerID).Scan(&s.TotalProducts)
	if err != nil {
		return DashboardStats{}, err
	}
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE owner_id = $1 AND quantity <= reorder_level`, ownerID).Scan(&s.LowStockCount)
	if err != nil {
		return DashboardStats{}, err
	}
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_amount), 0) FROM sales WHERE owner_id = $1`, ownerID).
		Scan(&s.TotalSales, &s.TotalRevenue)
	if err != nil {
		return DashboardStats{}, err
	}

	return s, nil
}
