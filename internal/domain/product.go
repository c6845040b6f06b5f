package domain

// Product is an immutable catalog entry. The identifier is opaque and unique
// within the catalog; products are never mutated by the cart or checkout flow.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	OnPromotion bool
	Featured    bool
}
