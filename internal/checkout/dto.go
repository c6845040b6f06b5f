package checkout

import "risorte/internal/domain"

type OrderLineDTO struct {
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	LineTotal      float64 `json:"lineTotal"`
	LineTotalLabel string  `json:"lineTotalLabel"`
}

type OrderDTO struct {
	Mode          string         `json:"mode"`
	Lines         []OrderLineDTO `json:"lines"`
	Subtotal      float64        `json:"subtotal"`
	SubtotalLabel string         `json:"subtotalLabel"`
	Fee           float64        `json:"fee"`
	FeeLabel      string         `json:"feeLabel"`
	Total         float64        `json:"total"`
	TotalLabel    string         `json:"totalLabel"`
	EstimateMin   int            `json:"estimateMinMinutes"`
	EstimateMax   int            `json:"estimateMaxMinutes"`
}

type BeginResponse struct {
	State string   `json:"state"`
	Order OrderDTO `json:"order"`
}

type ConfirmResponse struct {
	State       string   `json:"state"`
	Order       OrderDTO `json:"order"`
	Message     string   `json:"message"`
	WhatsAppURL string   `json:"whatsappUrl"`
}

type StateResponse struct {
	State string `json:"state"`
}

type ProfileRequiredResponse struct {
	Error         string   `json:"error"`
	Message       string   `json:"message"`
	State         string   `json:"state"`
	MissingFields []string `json:"missingFields"`
}

func toOrderDTO(o Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineDTO{
			ProductID:      l.ProductID,
			Name:           l.Name,
			Quantity:       l.Quantity,
			LineTotal:      l.LineTotal(),
			LineTotalLabel: domain.FormatBRL(l.LineTotal()),
		})
	}

	return OrderDTO{
		Mode:          string(o.Mode),
		Lines:         lines,
		Subtotal:      o.Subtotal,
		SubtotalLabel: domain.FormatBRL(o.Subtotal),
		Fee:           o.Fee,
		FeeLabel:      domain.FormatBRL(o.Fee),
		Total:         o.Total,
		TotalLabel:    domain.FormatBRL(o.Total),
		EstimateMin:   o.EstimateMin,
		EstimateMax:   o.EstimateMax,
	}
}
