package domain

// Order is a historical entry from the catalog document, display-only.
// The in-progress order being checked out never becomes one of these; it
// leaves the system as an outbound message.
type Order struct {
	ID     string
	Status string
	Total  float64
	Items  []OrderItem
}

type OrderItem struct {
	Name     string
	Price    float64
	Quantity int
}

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPreparing = "PREPARING"
	OrderStatusDelivered = "DELIVERED"
)
