package catalog

import (
	"testing"

	"risorte/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestService_QueryAllProducts(t *testing.T) {
	index := NewService(testutil.SampleCatalog())

	products := index.Query(ProductQuery{})

	assert.Len(t, products, 3)
	// Categories are alphabetical, so bebidas comes first.
	assert.Equal(t, "3", products[0].ID)
	assert.Equal(t, "1", products[1].ID)
	assert.Equal(t, "2", products[2].ID)
}

func TestService_QueryByCategory(t *testing.T) {
	index := NewService(testutil.SampleCatalog())

	products := index.Query(ProductQuery{Category: "porcoes"})
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "porcoes", p.Category)
	}

	assert.Empty(t, index.Query(ProductQuery{Category: "sobremesas"}))
}

func TestService_QueryByFlags(t *testing.T) {
	index := NewService(testutil.SampleCatalog())

	promos := index.Query(ProductQuery{OnPromotion: true})
	assert.Len(t, promos, 1)
	assert.Equal(t, "1", promos[0].ID)

	featured := index.Query(ProductQuery{Featured: true})
	assert.Len(t, featured, 2)

	both := index.Query(ProductQuery{OnPromotion: true, Featured: true})
	assert.Len(t, both, 1)
}

func TestService_QueryLimit(t *testing.T) {
	index := NewService(testutil.SampleCatalog())

	assert.Len(t, index.Query(ProductQuery{Limit: 2}), 2)
	assert.Len(t, index.Query(ProductQuery{Limit: 10}), 3)
}

func TestService_ProductByID(t *testing.T) {
	index := NewService(testutil.SampleCatalog())

	p, ok := index.ProductByID("2")
	assert.True(t, ok)
	assert.Equal(t, "Isca de Frango", p.Name)

	_, ok = index.ProductByID("missing")
	assert.False(t, ok)
}

func TestService_Categories(t *testing.T) {
	index := NewService(testutil.SampleCatalog())

	assert.Equal(t, []string{"bebidas", "porcoes"}, index.Categories())
}

func TestService_Orders(t *testing.T) {
	index := NewService(testutil.SampleCatalog())

	orders := index.Orders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "100", orders[0].ID)
	assert.Len(t, orders[0].Items, 2)
}

func TestService_StoreConfig(t *testing.T) {
	index := NewService(testutil.SampleCatalog())

	cfg := index.StoreConfig()
	assert.Equal(t, "Risorte Petiscaria", cfg.EstablishmentName)
	assert.Equal(t, 5.00, cfg.DeliveryFee)
}
