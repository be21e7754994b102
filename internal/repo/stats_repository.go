package repo

// DashboardStats are per-owner aggregate counts for the dashboard view.
type DashboardStats struct {
	TotalProducts int     `json:"total_products"`
	LowStockCount int     `json:"low_stock_count"`
	TotalSales    int     `json:"total_sales"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type StatsRepository interface {
	GetDashboardStats(ownerID string) (DashboardStats, error)
}
