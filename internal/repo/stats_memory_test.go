package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	products := NewInMemoryProductRepository()
	sales := NewInMemorySaleRepository(products)
	stats := NewInMemoryStatsRepository()
	stats.SetRepositories(products, sales)

	apples, _ := products.Create("owner-a", newProduct("Apples", "FRU001", "Fruits", 25, 10))
	_, _ = products.Create("owner-a", newProduct("Bread", "BAK001", "Bakery", 5, 6))
	_, _ = products.Create("owner-b", newProduct("Milk", "DAI001", "Dairy", 2, 8))

	_, err := sales.Process("owner-a", []SaleLine{{ProductID: apples.ID, Quantity: 2, UnitPrice: 50}}, "cash")
	require.NoError(t, err)
	_, err = sales.Process("owner-a", []SaleLine{{ProductID: apples.ID, Quantity: 1, UnitPrice: 40}}, "card")
	require.NoError(t, err)

	got, err := stats.GetDashboardStats("owner-a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalProducts)
	assert.Equal(t, 1, got.LowStockCount)
	assert.Equal(t, 2, got.TotalSales)
	assert.InDelta(t, 140.0, got.TotalRevenue, 1e-9)

	// No intervening mutation: a second read is identical.
	again, err := stats.GetDashboardStats("owner-a")
	require.NoError(t, err)
	assert.Equal(t, got, again)

	// The other tenant's numbers are its own.
	other, err := stats.GetDashboardStats("owner-b")
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{TotalProducts: 1, LowStockCount: 1}, other)
}
