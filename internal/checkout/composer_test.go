package checkout

import (
	"net/url"
	"strings"
	"testing"

	"risorte/internal/domain"
	"risorte/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() domain.Profile {
	return domain.Profile{
		Name:  "Maria",
		Phone: "+5511988887777",
		Address: domain.Address{
			Street:       "Rua Exemplo, 123",
			Neighborhood: "Centro",
			City:         "São Paulo - SP",
		},
	}
}

func TestComputeTotal(t *testing.T) {
	cfg := testutil.SampleCatalog().Config

	assert.InDelta(t, 25.00, ComputeTotal(20.00, domain.ModeDelivery, cfg), 0.001)
	assert.InDelta(t, 20.00, ComputeTotal(20.00, domain.ModePickup, cfg), 0.001)
	assert.InDelta(t, 5.00, ComputeTotal(0, domain.ModeDelivery, cfg), 0.001)
}

func TestCompose_DeliveryOrder(t *testing.T) {
	cfg := testutil.SampleCatalog().Config
	lines := []domain.CartLine{
		{ProductID: "x", Name: "X", Price: 10.00, Quantity: 2},
	}

	order := Compose(lines, testProfile(), domain.ModeDelivery, cfg)

	assert.InDelta(t, 20.00, order.Subtotal, 0.001)
	assert.InDelta(t, 5.00, order.Fee, 0.001)
	assert.InDelta(t, 25.00, order.Total, 0.001)
	assert.Equal(t, 30, order.EstimateMin)
	assert.Equal(t, 45, order.EstimateMax)

	assert.Contains(t, order.Message, "*PEDIDO - Risorte Petiscaria*")
	assert.Contains(t, order.Message, "*Cliente:* Maria")
	assert.Contains(t, order.Message, "*Endereço:* Rua Exemplo, 123, Centro, São Paulo - SP")
	assert.Contains(t, order.Message, "*Tipo:* Delivery")
	assert.Contains(t, order.Message, "2x X")
	assert.Contains(t, order.Message, "R$ 20,00")
	assert.Contains(t, order.Message, "Taxa de Entrega: R$ 5,00")
	assert.Contains(t, order.Message, "*TOTAL:* R$ 25,00")
	assert.Contains(t, order.Message, "*Forma de Pagamento:* A combinar")
	assert.Contains(t, order.Message, "*Previsão:* 30-45 minutos")
}

func TestCompose_PickupOrder(t *testing.T) {
	cfg := testutil.SampleCatalog().Config
	lines := []domain.CartLine{
		{ProductID: "x", Name: "X", Price: 10.00, Quantity: 2},
	}
	p := domain.Profile{Name: "Maria", Phone: "+5511988887777"}

	order := Compose(lines, p, domain.ModePickup, cfg)

	assert.Equal(t, 0.0, order.Fee)
	assert.InDelta(t, 20.00, order.Total, 0.001)
	assert.Equal(t, 15, order.EstimateMin)
	assert.Equal(t, 25, order.EstimateMax)

	assert.Contains(t, order.Message, "*Tipo:* Retirada no Local")
	assert.Contains(t, order.Message, "*TOTAL:* R$ 20,00")
	assert.Contains(t, order.Message, "*Previsão:* 15-25 minutos")
	assert.NotContains(t, order.Message, "Taxa de Entrega")
	assert.NotContains(t, order.Message, "*Endereço:*")
}

func TestCompose_AddressComplement(t *testing.T) {
	cfg := testutil.SampleCatalog().Config
	p := testProfile()
	p.Address.Complement = "Ap 42"

	order := Compose([]domain.CartLine{{Name: "X", Price: 1, Quantity: 1}}, p, domain.ModeDelivery, cfg)

	assert.Contains(t, order.Message, "São Paulo - SP - Ap 42")
}

func TestCompose_ItemizedLines(t *testing.T) {
	cfg := testutil.SampleCatalog().Config
	lines := []domain.CartLine{
		{Name: "Batata Frita", Price: 25.90, Quantity: 1},
		{Name: "Suco de Laranja", Price: 9.00, Quantity: 3},
	}

	order := Compose(lines, testProfile(), domain.ModeDelivery, cfg)

	assert.Contains(t, order.Message, "1x Batata Frita\n  R$ 25,90\n")
	assert.Contains(t, order.Message, "3x Suco de Laranja\n  R$ 27,00\n")
}

func TestHandoffLink_StripsNonDigits(t *testing.T) {
	link := HandoffLink("+55 (11) 99999-9999", "hello")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511999999999?text="))
}

func TestHandoffLink_MessageRoundTrips(t *testing.T) {
	cfg := testutil.SampleCatalog().Config
	order := Compose([]domain.CartLine{{Name: "X", Price: 10, Quantity: 2}}, testProfile(), domain.ModeDelivery, cfg)

	parsed, err := url.Parse(order.HandoffURL)
	require.NoError(t, err)

	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, order.Message, parsed.Query().Get("text"))
}

func TestQRCode_EncodesLink(t *testing.T) {
	png, err := QRCode("https://wa.me/5511999999999?text=hello")
	require.NoError(t, err)

	assert.NotEmpty(t, png)
	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestCompose_FeeMatchesSummaryFeeSource(t *testing.T) {
	cfg := testutil.SampleCatalog().Config
	lines := []domain.CartLine{{Name: "X", Price: 10, Quantity: 1}}

	order := Compose(lines, testProfile(), domain.ModeDelivery, cfg)

	assert.Equal(t, cfg.FeeFor(domain.ModeDelivery), order.Fee)
	assert.Contains(t, order.Message, domain.FormatBRL(order.Total))
}
