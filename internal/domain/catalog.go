package domain

// Catalog is the loaded catalog document: establishment config, products
// grouped by category, and the display-only order history.
type Catalog struct {
	Config   StoreConfig
	Products map[string][]Product
	Orders   []Order
}
