package repo

type InMemoryStatsRepository struct {
	productRepo ProductRepository
	saleRepo    SaleRepository
}

func NewInMemoryStatsRepository() *InMemoryStatsRepository {
	return &InMemoryStatsRepository{}
}

func (r *InMemoryStatsRepository) SetRepositories(
	productRepo ProductRepository,
	saleRepo SaleRepository,
) {
	r.productRepo = productRepo
	r.saleRepo = saleRepo
}

// GetDashboardStats implements StatsRepository.
func (r *InMemoryStatsRepository) GetDashboardStats(ownerID string) (DashboardStats, error) {
	s := DashboardStats{}

	products, err := r.productRepo.GetByOwner(ownerID, ProductFilter{})
	if err != nil {
		return s, err
	}
	s.TotalProducts = len(products)
	for _, p := range products {
		if p.LowStock() {
			s.LowStockCount++
		}
	}

	sales, err := r.saleRepo.GetByOwner(ownerID)
	if err != nil {
		return s, err
	}
	s.TotalSales = len(sales)
	for _, sale := range sales {
		s.TotalRevenue += sale.TotalAmount
	}

	return s, nil
}
