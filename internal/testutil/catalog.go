package testutil

import "risorte/internal/domain"

// SampleCatalog is a small fixture with two categories, mixed promotion and
// featured flags, and one historical order.
func SampleCatalog() domain.Catalog {
	return domain.Catalog{
		Config: domain.StoreConfig{
			EstablishmentName:  "Risorte Petiscaria",
			WhatsAppContact:    "+55 (11) 99999-9999",
			DeliveryFee:        5.00,
			DeliveryMinMinutes: 30,
			DeliveryMaxMinutes: 45,
			PickupMinMinutes:   15,
			PickupMaxMinutes:   25,
		},
		Products: map[string][]domain.Product{
			"porcoes": {
				{ID: "1", Name: "Batata Frita", Description: "Porção grande", Price: 25.90, Image: "batata.jpg", Category: "porcoes", OnPromotion: true, Featured: true},
				{ID: "2", Name: "Isca de Frango", Description: "Com molho", Price: 32.50, Image: "frango.jpg", Category: "porcoes"},
			},
			"bebidas": {
				{ID: "3", Name: "Suco de Laranja", Description: "Natural", Price: 9.00, Image: "suco.jpg", Category: "bebidas", Featured: true},
			},
		},
		Orders: []domain.Order{
			{
				ID:     "100",
				Status: domain.OrderStatusDelivered,
				Total:  34.90,
				Items: []domain.OrderItem{
					{Name: "Batata Frita", Price: 25.90, Quantity: 1},
					{Name: "Suco de Laranja", Price: 9.00, Quantity: 1},
				},
			},
		},
	}
}
