package cart

import "go.uber.org/zap"

// CatalogAccess is what the cart needs from the catalog module.
type CatalogAccess interface {
	ProductFinder
	ConfigSource
}

func NewModule(catalog CatalogAccess, logger *zap.Logger) (*Controller, *Service) {
	svc := NewService(catalog)
	return NewController(svc, catalog, logger), svc
}
