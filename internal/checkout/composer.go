package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"

	"risorte/internal/domain"
)

// Order is the ephemeral snapshot composed at checkout: the cart lines,
// pricing under the selected mode, the profile used, and the outbound
// message. It is valid only at the moment of hand-off and never persisted.
type Order struct {
	Lines       []domain.CartLine
	Mode        domain.FulfillmentMode
	Profile     domain.Profile
	Subtotal    float64
	Fee         float64
	Total       float64
	EstimateMin int
	EstimateMax int
	Message     string
	HandoffURL  string
}

// ComputeTotal prices the cart under the given mode: the delivery fee applies
// only in delivery mode.
func ComputeTotal(subtotal float64, mode domain.FulfillmentMode, cfg domain.StoreConfig) float64 {
	return subtotal + cfg.FeeFor(mode)
}

// Compose builds the full order snapshot, its outbound message and the
// hand-off deep link. Pure function of its inputs.
func Compose(lines []domain.CartLine, p domain.Profile, mode domain.FulfillmentMode, cfg domain.StoreConfig) Order {
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.LineTotal()
	}
	fee := cfg.FeeFor(mode)
	min, max := cfg.DurationBounds(mode)

	order := Order{
		Lines:       lines,
		Mode:        mode,
		Profile:     p,
		Subtotal:    subtotal,
		Fee:         fee,
		Total:       subtotal + fee,
		EstimateMin: min,
		EstimateMax: max,
	}
	order.Message = composeMessage(order, cfg)
	order.HandoffURL = HandoffLink(cfg.WhatsAppContact, order.Message)
	return order
}

// composeMessage renders the plain-text order summary handed to the
// messaging channel, in the exact layout the fulfillment operators expect.
func composeMessage(order Order, cfg domain.StoreConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*PEDIDO - %s*\n\n", cfg.EstablishmentName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", order.Profile.Name)

	if order.Mode == domain.ModeDelivery {
		addr := order.Profile.Address
		fmt.Fprintf(&b, "*Endereço:* %s, %s, %s", addr.Street, addr.Neighborhood, addr.City)
		if addr.Complement != "" {
			fmt.Fprintf(&b, " - %s", addr.Complement)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "*Tipo:* %s\n\n", order.Mode.Label())
	b.WriteString("*ITENS DO PEDIDO:*\n")
	b.WriteString("------------------------------\n")

	for _, l := range order.Lines {
		fmt.Fprintf(&b, "%dx %s\n", l.Quantity, l.Name)
		fmt.Fprintf(&b, "  %s\n", domain.FormatBRL(l.LineTotal()))
	}

	b.WriteString("------------------------------\n")

	if order.Mode == domain.ModeDelivery {
		fmt.Fprintf(&b, "Taxa de Entrega: %s\n", domain.FormatBRL(order.Fee))
	}

	fmt.Fprintf(&b, "\n*TOTAL:* %s\n\n", domain.FormatBRL(order.Total))
	b.WriteString("*Forma de Pagamento:* A combinar\n")
	fmt.Fprintf(&b, "*Previsão:* %d-%d minutos\n\n", order.EstimateMin, order.EstimateMax)
	fmt.Fprintf(&b, "_Pedido gerado via App %s_", cfg.EstablishmentName)

	return b.String()
}

// HandoffLink builds the wa.me deep link: contact identifier reduced to
// digits only, message URL-encoded. The hand-off is fire-and-forget; no
// response is awaited.
func HandoffLink(contact, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, contact)

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

// QRCode renders the hand-off link as a PNG so the order can be sent from a
// different device than the one browsing.
func QRCode(link string) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, 256)
}
