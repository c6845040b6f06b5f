package catalog

import "risorte/internal/domain"

// Index answers the browsing queries exposed to the presentation layer.
type Index interface {
	Query(q ProductQuery) []domain.Product
	ProductByID(id string) (domain.Product, bool)
	Categories() []string
	StoreConfig() domain.StoreConfig
	Orders() []domain.Order
}

// Repository fetches the catalog document once at startup.
type Repository interface {
	Load() (domain.Catalog, error)
}
