package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"risorte/internal/domain"
	apperrors "risorte/internal/errors"

	"go.uber.org/zap"
)

type Controller struct {
	index  Index
	logger *zap.Logger
}

func NewController(index Index, logger *zap.Logger) *Controller {
	return &Controller{
		index:  index,
		logger: logger,
	}
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	query := ProductQuery{
		Category:    r.URL.Query().Get("category"),
		OnPromotion: r.URL.Query().Get("promotion") == "true",
		Featured:    r.URL.Query().Get("featured") == "true",
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.writeValidationError(w, "invalid limit", apperrors.ValidationDetail{
				Field:   "limit",
				Message: "limit must be a positive integer",
			})
			return
		}
		query.Limit = limit
	}

	products := c.index.Query(query)

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}

	c.writeJSON(w, http.StatusOK, ProductListResponse{Products: dtos})
}

func (c *Controller) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, CategoryListResponse{Categories: c.index.Categories()})
}

func (c *Controller) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := c.index.StoreConfig()
	c.writeJSON(w, http.StatusOK, StoreConfigDTO{
		EstablishmentName:  cfg.EstablishmentName,
		WhatsAppContact:    cfg.WhatsAppContact,
		DeliveryFee:        cfg.DeliveryFee,
		DeliveryFeeLabel:   domain.FormatBRL(cfg.DeliveryFee),
		DeliveryMinMinutes: cfg.DeliveryMinMinutes,
		DeliveryMaxMinutes: cfg.DeliveryMaxMinutes,
		PickupMinMinutes:   cfg.PickupMinMinutes,
		PickupMaxMinutes:   cfg.PickupMaxMinutes,
	})
}

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders := c.index.Orders()

	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		items := make([]OrderItemDTO, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, OrderItemDTO{
				Name:     item.Name,
				Price:    item.Price,
				Quantity: item.Quantity,
			})
		}
		dtos = append(dtos, OrderDTO{
			ID:         o.ID,
			Status:     o.Status,
			Total:      o.Total,
			TotalLabel: domain.FormatBRL(o.Total),
			Items:      items,
		})
	}

	c.writeJSON(w, http.StatusOK, OrderListResponse{Orders: dtos})
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PriceLabel:  domain.FormatBRL(p.Price),
		Image:       p.Image,
		Category:    p.Category,
		OnPromotion: p.OnPromotion,
		Featured:    p.Featured,
	}
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
