package cart

import "risorte/internal/domain"

// ProductFinder resolves a product id against the catalog index at add time.
type ProductFinder interface {
	ProductByID(id string) (domain.Product, bool)
}

// ConfigSource provides the establishment config used for fee computation.
type ConfigSource interface {
	StoreConfig() domain.StoreConfig
}
