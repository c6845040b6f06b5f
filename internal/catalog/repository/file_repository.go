package repository

import (
	"encoding/json"
	"os"
	"strings"

	"risorte/internal/domain"
	"risorte/internal/errors"
)

// document mirrors the catalog JSON the original storefront data files use:
// Portuguese keys, numeric product ids, products grouped by category name.
type document struct {
	Config   documentConfig               `json:"config"`
	User     json.RawMessage              `json:"user"`
	Products map[string][]documentProduct `json:"produtos"`
	Orders   []documentOrder              `json:"pedidos"`
}

type documentConfig struct {
	EstablishmentName string  `json:"nome_estabelecimento"`
	WhatsAppContact   string  `json:"telefone_whatsapp"`
	DeliveryFee       float64 `json:"taxa_entrega"`
	DeliveryMin       int     `json:"tempo_entrega_min"`
	DeliveryMax       int     `json:"tempo_entrega_max"`
	PickupMin         int     `json:"tempo_retirada_min"`
	PickupMax         int     `json:"tempo_retirada_max"`
}

type documentProduct struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"nome"`
	Description string      `json:"descricao"`
	Price       float64     `json:"preco"`
	Image       string      `json:"imagem"`
	OnPromotion bool        `json:"promocao"`
	Featured    bool        `json:"destaque"`
}

type documentOrder struct {
	ID     json.Number         `json:"id"`
	Status string              `json:"status"`
	Total  float64             `json:"total"`
	Items  []documentOrderItem `json:"items"`
}

type documentOrderItem struct {
	Name     string  `json:"nome"`
	Price    float64 `json:"preco"`
	Quantity int     `json:"quantidade"`
}

type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads and maps the catalog document. Callers substitute
// DefaultCatalog on error; a load failure must never surface to the user.
func (r *FileRepository) Load() (domain.Catalog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Catalog{}, errors.NewCatalogLoadError("reading catalog document", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Catalog{}, errors.NewCatalogLoadError("parsing catalog document", err)
	}

	return mapDocument(doc), nil
}

// DefaultCatalog is the built-in substitute for an unavailable catalog
// source: valid establishment config, no products, no order history.
func DefaultCatalog() domain.Catalog {
	return domain.Catalog{
		Config:   domain.DefaultStoreConfig(),
		Products: map[string][]domain.Product{},
		Orders:   nil,
	}
}

func mapDocument(doc document) domain.Catalog {
	catalog := domain.Catalog{
		Config: domain.StoreConfig{
			EstablishmentName:  doc.Config.EstablishmentName,
			WhatsAppContact:    doc.Config.WhatsAppContact,
			DeliveryFee:        doc.Config.DeliveryFee,
			DeliveryMinMinutes: doc.Config.DeliveryMin,
			DeliveryMaxMinutes: doc.Config.DeliveryMax,
			PickupMinMinutes:   doc.Config.PickupMin,
			PickupMaxMinutes:   doc.Config.PickupMax,
		}.Normalize(),
		Products: make(map[string][]domain.Product, len(doc.Products)),
	}

	for category, products := range doc.Products {
		mapped := make([]domain.Product, 0, len(products))
		for _, p := range products {
			mapped = append(mapped, domain.Product{
				ID:          p.ID.String(),
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Image:       p.Image,
				Category:    category,
				OnPromotion: p.OnPromotion,
				Featured:    p.Featured,
			})
		}
		catalog.Products[category] = mapped
	}

	for _, o := range doc.Orders {
		items := make([]domain.OrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			quantity := item.Quantity
			if quantity < 1 {
				quantity = 1
			}
			items = append(items, domain.OrderItem{
				Name:     item.Name,
				Price:    item.Price,
				Quantity: quantity,
			})
		}
		catalog.Orders = append(catalog.Orders, domain.Order{
			ID:     o.ID.String(),
			Status: mapOrderStatus(o.Status),
			Total:  o.Total,
			Items:  items,
		})
	}

	return catalog
}

func mapOrderStatus(status string) string {
	switch strings.ToLower(status) {
	case "pendente":
		return domain.OrderStatusPending
	case "preparando":
		return domain.OrderStatusPreparing
	case "entregue":
		return domain.OrderStatusDelivered
	default:
		return strings.ToUpper(status)
	}
}
