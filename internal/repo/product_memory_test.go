package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocery-tracker/grocery-tracker/internal/models"
)

func newProduct(name, sku, category string, quantity, reorderLevel int) models.Product {
	return models.Product{
		Name:         name,
		SKU:          sku,
		Category:     category,
		Supplier:     "Fresh Farms",
		Price:        50,
		Cost:         30,
		Quantity:     quantity,
		ReorderLevel: reorderLevel,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

func TestProductRepository_TenantIsolation(t *testing.T) {
	r := NewInMemoryProductRepository()

	apples, err := r.Create("owner-a", newProduct("Apples", "FRU001", "Fruits", 25, 10))
	require.NoError(t, err)
	milk, err := r.Create("owner-b", newProduct("Milk", "DAI001", "Dairy", 15, 8))
	require.NoError(t, err)

	// B's valid id is invisible to A, and vice versa.
	_, err = r.GetByID("owner-a", milk.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = r.GetByID("owner-b", apples.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Cross-tenant update and delete are NotFound, not Forbidden, and leave
	// the record untouched.
	milk.Name = "Stolen"
	_, err = r.Update("owner-a", milk)
	assert.ErrorIs(t, err, ErrProductNotFound)
	err = r.Delete("owner-a", milk.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	got, err := r.GetByID("owner-b", milk.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", got.Name)

	// Listings only ever contain the caller's records.
	listA, err := r.GetByOwner("owner-a", ProductFilter{})
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, apples.ID, listA[0].ID)
}

func TestProductRepository_FilterAndOrdering(t *testing.T) {
	r := NewInMemoryProductRepository()

	first, _ := r.Create("owner-a", newProduct("Apples", "FRU001", "Fruits", 25, 10))
	second, _ := r.Create("owner-a", newProduct("Milk", "DAI001", "Dairy", 15, 8))
	third, _ := r.Create("owner-a", newProduct("Bread", "BAK001", "Bakery", 5, 6))

	all, err := r.GetByOwner("owner-a", ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Most recently created first.
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	byCategory, err := r.GetByOwner("owner-a", ProductFilter{Category: "Dairy"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Milk", byCategory[0].Name)

	// Search is case-insensitive and matches name or SKU.
	byName, err := r.GetByOwner("owner-a", ProductFilter{Search: "appl"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Apples", byName[0].Name)

	bySKU, err := r.GetByOwner("owner-a", ProductFilter{Search: "bak0"})
	require.NoError(t, err)
	require.Len(t, bySKU, 1)
	assert.Equal(t, "Bread", bySKU[0].Name)

	none, err := r.GetByOwner("owner-a", ProductFilter{Category: "Dairy", Search: "bread"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductRepository_LowStockDerivation(t *testing.T) {
	r := NewInMemoryProductRepository()

	low, _ := r.Create("owner-a", newProduct("Bread", "BAK001", "Bakery", 5, 6))
	boundary, _ := r.Create("owner-a", newProduct("Eggs", "DAI002", "Dairy", 5, 5))
	_, _ = r.Create("owner-a", newProduct("Rice", "GRO001", "Grains", 20, 10))
	_, _ = r.Create("owner-b", newProduct("Bread", "BAK001", "Bakery", 1, 6))

	got, err := r.GetLowStock("owner-a")
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := []string{got[0].ID, got[1].ID}
	assert.Contains(t, ids, low.ID)
	assert.Contains(t, ids, boundary.ID)

	// Low stock is recomputed from the live quantity, never cached.
	boundary.Quantity = 50
	_, err = r.Update("owner-a", boundary)
	require.NoError(t, err)

	got, err = r.GetLowStock("owner-a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, low.ID, got[0].ID)
}

func TestProductRepository_SKUNotUnique(t *testing.T) {
	r := NewInMemoryProductRepository()

	_, err := r.Create("owner-a", newProduct("Apples", "SHARED", "Fruits", 10, 5))
	require.NoError(t, err)
	second, err := r.Create("owner-a", newProduct("Pears", "SHARED", "Fruits", 10, 5))
	require.NoError(t, err)

	// GetBySKU resolves to the most recent match.
	got, err := r.GetBySKU("owner-a", "SHARED")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}
