package cart

type AddItemRequest struct {
	ProductID string `json:"productId"`
}

type SetFulfillmentRequest struct {
	Mode string `json:"mode"`
}

type CartLineDTO struct {
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	PriceLabel     string  `json:"priceLabel"`
	Image          string  `json:"image"`
	Quantity       int     `json:"quantity"`
	LineTotal      float64 `json:"lineTotal"`
	LineTotalLabel string  `json:"lineTotalLabel"`
}

type SummaryResponse struct {
	Lines         []CartLineDTO `json:"lines"`
	ItemCount     int           `json:"itemCount"`
	Mode          string        `json:"mode"`
	Subtotal      float64       `json:"subtotal"`
	SubtotalLabel string        `json:"subtotalLabel"`
	Fee           float64       `json:"fee"`
	FeeLabel      string        `json:"feeLabel"`
	Total         float64       `json:"total"`
	TotalLabel    string        `json:"totalLabel"`
}
