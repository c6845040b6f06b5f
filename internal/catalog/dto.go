package catalog

// ProductQuery narrows the product listing. Zero values mean "no filter";
// Limit <= 0 returns everything that matches.
type ProductQuery struct {
	Category    string
	OnPromotion bool
	Featured    bool
	Limit       int
}

type ProductDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PriceLabel  string  `json:"priceLabel"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	OnPromotion bool    `json:"onPromotion"`
	Featured    bool    `json:"featured"`
}

type ProductListResponse struct {
	Products []ProductDTO `json:"products"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

type StoreConfigDTO struct {
	EstablishmentName  string  `json:"establishmentName"`
	WhatsAppContact    string  `json:"whatsappContact"`
	DeliveryFee        float64 `json:"deliveryFee"`
	DeliveryFeeLabel   string  `json:"deliveryFeeLabel"`
	DeliveryMinMinutes int     `json:"deliveryMinMinutes"`
	DeliveryMaxMinutes int     `json:"deliveryMaxMinutes"`
	PickupMinMinutes   int     `json:"pickupMinMinutes"`
	PickupMaxMinutes   int     `json:"pickupMaxMinutes"`
}

type OrderItemDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderDTO struct {
	ID         string         `json:"id"`
	Status     string         `json:"status"`
	Total      float64        `json:"total"`
	TotalLabel string         `json:"totalLabel"`
	Items      []OrderItemDTO `json:"items"`
}

type OrderListResponse struct {
	Orders []OrderDTO `json:"orders"`
}
