package cart

import (
	"fmt"
	"sync"

	"risorte/internal/domain"
	"risorte/internal/errors"
)

// Summary is the priced view of the session at a point in time. Fee and
// total come from StoreConfig.FeeFor, the same function the order composer
// uses, so the displayed total can never diverge from the composed one.
type Summary struct {
	Lines     []domain.CartLine
	ItemCount int
	Mode      domain.FulfillmentMode
	Subtotal  float64
	Fee       float64
	Total     float64
}

// Service owns the session state: the cart ledger and the selected
// fulfillment mode. The original storefront kept these as module-level
// globals mutated from a single event loop; here they are one explicit
// object, and a mutex serializes mutations since HTTP handlers run
// concurrently.
type Service struct {
	mu       sync.Mutex
	cart     domain.Cart
	mode     domain.FulfillmentMode
	products ProductFinder
}

func NewService(products ProductFinder) *Service {
	return &Service{
		mode:     domain.ModeDelivery,
		products: products,
	}
}

// Add resolves the product and appends or increments its line.
func (s *Service) Add(productID string) (domain.CartLine, error) {
	product, ok := s.products.ProductByID(productID)
	if !ok {
		return domain.CartLine{}, errors.NewNotFoundError(
			fmt.Sprintf("product %q not found", productID))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(product)
	for _, l := range s.cart.Lines() {
		if l.ProductID == productID {
			return l, nil
		}
	}
	return domain.CartLine{}, nil
}

func (s *Service) Increase(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Increase(productID)
}

func (s *Service) Decrease(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Decrease(productID)
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *Service) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Service) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

func (s *Service) Mode() domain.FulfillmentMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches between delivery and pickup. The switch itself has no
// side effects; totals are recomputed on every Summary read.
func (s *Service) SetMode(mode domain.FulfillmentMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

func (s *Service) Summary(cfg domain.StoreConfig) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.cart.Subtotal()
	fee := cfg.FeeFor(s.mode)
	return Summary{
		Lines:     s.cart.Lines(),
		ItemCount: s.cart.TotalItemCount(),
		Mode:      s.mode,
		Subtotal:  subtotal,
		Fee:       fee,
		Total:     subtotal + fee,
	}
}
