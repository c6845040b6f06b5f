package cart

import (
	"encoding/json"
	"net/http"

	"risorte/internal/domain"
	apperrors "risorte/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Controller struct {
	service *Service
	config  ConfigSource
	logger  *zap.Logger
}

func NewController(service *Service, config ConfigSource, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		config:  config,
		logger:  logger,
	}
}

func (c *Controller) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary := c.service.Summary(c.config.StoreConfig())
	c.writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

func (c *Controller) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.ProductID == "" {
		c.writeValidationError(w, "productId is required", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must not be empty",
		})
		return
	}

	line, err := c.service.Add(req.ProductID)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": nfe.Message,
			})
			return
		}
		logger.Error("add to cart failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	logger.Info("item added to cart",
		zap.String("productId", line.ProductID), zap.Int("quantity", line.Quantity))
	c.writeJSON(w, http.StatusOK, toSummaryResponse(c.service.Summary(c.config.StoreConfig())))
}

func (c *Controller) HandleIncreaseItem(w http.ResponseWriter, r *http.Request) {
	c.adjustQuantity(w, r, c.service.Increase)
}

func (c *Controller) HandleDecreaseItem(w http.ResponseWriter, r *http.Request) {
	c.adjustQuantity(w, r, c.service.Decrease)
}

// adjustQuantity applies increase or decrease. An unknown product id is a
// no-op on the ledger but reported as 404 to the caller.
func (c *Controller) adjustQuantity(w http.ResponseWriter, r *http.Request, apply func(string) bool) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		c.writeValidationError(w, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must not be empty",
		})
		return
	}

	if !apply(productID) {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": "product is not in the cart",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, toSummaryResponse(c.service.Summary(c.config.StoreConfig())))
}

func (c *Controller) HandleSetFulfillment(w http.ResponseWriter, r *http.Request) {
	var req SetFulfillmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	mode, ok := domain.ParseFulfillmentMode(req.Mode)
	if !ok {
		c.writeValidationError(w, "invalid fulfillment mode", apperrors.ValidationDetail{
			Field:   "mode",
			Message: `mode must be "DELIVERY" or "PICKUP"`,
		})
		return
	}

	c.service.SetMode(mode)
	c.writeJSON(w, http.StatusOK, toSummaryResponse(c.service.Summary(c.config.StoreConfig())))
}

func toSummaryResponse(s Summary) SummaryResponse {
	lines := make([]CartLineDTO, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, CartLineDTO{
			ProductID:      l.ProductID,
			Name:           l.Name,
			Price:          l.Price,
			PriceLabel:     domain.FormatBRL(l.Price),
			Image:          l.Image,
			Quantity:       l.Quantity,
			LineTotal:      l.LineTotal(),
			LineTotalLabel: domain.FormatBRL(l.LineTotal()),
		})
	}

	return SummaryResponse{
		Lines:         lines,
		ItemCount:     s.ItemCount,
		Mode:          string(s.Mode),
		Subtotal:      s.Subtotal,
		SubtotalLabel: domain.FormatBRL(s.Subtotal),
		Fee:           s.Fee,
		FeeLabel:      domain.FormatBRL(s.Fee),
		Total:         s.Total,
		TotalLabel:    domain.FormatBRL(s.Total),
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
