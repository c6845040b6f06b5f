package domain

// FulfillmentMode gates the delivery fee and the address requirement.
type FulfillmentMode string

const (
	ModeDelivery FulfillmentMode = "DELIVERY"
	ModePickup   FulfillmentMode = "PICKUP"
)

// Label is the customer-facing name used in the outbound order message.
func (m FulfillmentMode) Label() string {
	if m == ModePickup {
		return "Retirada no Local"
	}
	return "Delivery"
}

func (m FulfillmentMode) Valid() bool {
	return m == ModeDelivery || m == ModePickup
}

func ParseFulfillmentMode(s string) (FulfillmentMode, bool) {
	m := FulfillmentMode(s)
	if m.Valid() {
		return m, true
	}
	return "", false
}
