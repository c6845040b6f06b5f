package domain

const (
	DefaultEstablishmentName = "Risorte Petiscaria"
	DefaultWhatsAppContact   = "+5511999999999"
	DefaultDeliveryFee       = 5.00
	DefaultDurationMin       = 30
	DefaultDurationMax       = 45
)

// StoreConfig is the establishment data carried inside the catalog document.
// Every field has a hardcoded fallback applied by Normalize, so a sparse or
// missing config section never breaks checkout.
type StoreConfig struct {
	EstablishmentName  string
	WhatsAppContact    string
	DeliveryFee        float64
	DeliveryMinMinutes int
	DeliveryMaxMinutes int
	PickupMinMinutes   int
	PickupMaxMinutes   int
}

func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		EstablishmentName:  DefaultEstablishmentName,
		WhatsAppContact:    DefaultWhatsAppContact,
		DeliveryFee:        DefaultDeliveryFee,
		DeliveryMinMinutes: DefaultDurationMin,
		DeliveryMaxMinutes: DefaultDurationMax,
		PickupMinMinutes:   DefaultDurationMin,
		PickupMaxMinutes:   DefaultDurationMax,
	}
}

// Normalize substitutes the fallback for every absent or invalid field.
// A non-positive fee counts as absent, matching the document contract where
// zero means "not configured".
func (c StoreConfig) Normalize() StoreConfig {
	def := DefaultStoreConfig()
	if c.EstablishmentName == "" {
		c.EstablishmentName = def.EstablishmentName
	}
	if c.WhatsAppContact == "" {
		c.WhatsAppContact = def.WhatsAppContact
	}
	if c.DeliveryFee <= 0 {
		c.DeliveryFee = def.DeliveryFee
	}
	if c.DeliveryMinMinutes <= 0 {
		c.DeliveryMinMinutes = def.DeliveryMinMinutes
	}
	if c.DeliveryMaxMinutes <= 0 {
		c.DeliveryMaxMinutes = def.DeliveryMaxMinutes
	}
	if c.PickupMinMinutes <= 0 {
		c.PickupMinMinutes = def.PickupMinMinutes
	}
	if c.PickupMaxMinutes <= 0 {
		c.PickupMaxMinutes = def.PickupMaxMinutes
	}
	return c
}

// FeeFor is the single source of truth for the fulfillment fee: the cart
// summary and the composed order message both derive from it.
func (c StoreConfig) FeeFor(mode FulfillmentMode) float64 {
	if mode == ModeDelivery {
		return c.DeliveryFee
	}
	return 0
}

// DurationBounds returns the estimated min/max minutes for the given mode.
func (c StoreConfig) DurationBounds(mode FulfillmentMode) (int, int) {
	if mode == ModeDelivery {
		return c.DeliveryMinMinutes, c.DeliveryMaxMinutes
	}
	return c.PickupMinMinutes, c.PickupMaxMinutes
}
