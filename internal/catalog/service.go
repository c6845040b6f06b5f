package catalog

import (
	"sort"

	"risorte/internal/domain"
)

type indexService struct {
	catalog    domain.Catalog
	categories []string
	byID       map[string]domain.Product
	all        []domain.Product
}

// NewService builds the in-memory index over an already loaded catalog.
// Category order is alphabetical and products keep their document order
// within each category.
func NewService(catalog domain.Catalog) Index {
	s := &indexService{
		catalog: catalog,
		byID:    make(map[string]domain.Product),
	}

	for name := range catalog.Products {
		s.categories = append(s.categories, name)
	}
	sort.Strings(s.categories)

	for _, name := range s.categories {
		for _, p := range catalog.Products[name] {
			s.all = append(s.all, p)
			s.byID[p.ID] = p
		}
	}

	return s
}

func (s *indexService) Query(q ProductQuery) []domain.Product {
	source := s.all
	if q.Category != "" {
		source = s.catalog.Products[q.Category]
	}

	matched := make([]domain.Product, 0, len(source))
	for _, p := range source {
		if q.OnPromotion && !p.OnPromotion {
			continue
		}
		if q.Featured && !p.Featured {
			continue
		}
		matched = append(matched, p)
		if q.Limit > 0 && len(matched) == q.Limit {
			break
		}
	}
	return matched
}

func (s *indexService) ProductByID(id string) (domain.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func (s *indexService) Categories() []string {
	categories := make([]string, len(s.categories))
	copy(categories, s.categories)
	return categories
}

func (s *indexService) StoreConfig() domain.StoreConfig {
	return s.catalog.Config
}

func (s *indexService) Orders() []domain.Order {
	orders := make([]domain.Order, len(s.catalog.Orders))
	copy(orders, s.catalog.Orders)
	return orders
}
