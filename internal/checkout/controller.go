package checkout

import (
	"encoding/json"
	"net/http"
	"strconv"

	apperrors "risorte/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Controller struct {
	checkout *Checkout
	logger   *zap.Logger
}

func NewController(checkout *Checkout, logger *zap.Logger) *Controller {
	return &Controller{
		checkout: checkout,
		logger:   logger,
	}
}

func (c *Controller) HandleBegin(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order, err := c.checkout.Begin(r.Context())
	if err != nil {
		c.handleCheckoutError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, BeginResponse{
		State: string(StateConfirming),
		Order: toOrderDTO(*order),
	})
}

func (c *Controller) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order, err := c.checkout.Confirm(r.Context())
	if err != nil {
		c.handleCheckoutError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, ConfirmResponse{
		State:       string(StateCompleted),
		Order:       toOrderDTO(*order),
		Message:     order.Message,
		WhatsAppURL: order.HandoffURL,
	})
}

func (c *Controller) HandleCancel(w http.ResponseWriter, r *http.Request) {
	c.checkout.Cancel()
	c.writeJSON(w, http.StatusOK, StateResponse{State: string(StateIdle)})
}

func (c *Controller) HandleGetState(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, StateResponse{State: string(c.checkout.State())})
}

// HandleQRCode renders the last handed-off order's wa.me link as a PNG.
func (c *Controller) HandleQRCode(w http.ResponseWriter, r *http.Request) {
	order := c.checkout.LastCompleted()
	if order == nil {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": "no completed order to encode",
		})
		return
	}

	png, err := QRCode(order.HandoffURL)
	if err != nil {
		c.logger.Error("qr code generation failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		c.logger.Error("failed to write qr code response", zap.Error(err))
	}
}

func (c *Controller) handleCheckoutError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ece, ok := apperrors.IsEmptyCartError(err); ok {
		c.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   "EMPTY_CART",
			"message": ece.Message,
			"state":   string(StateIdle),
		})
		return
	}

	if ipe, ok := apperrors.IsIncompleteProfileError(err); ok {
		c.writeJSON(w, http.StatusConflict, ProfileRequiredResponse{
			Error:         "PROFILE_REQUIRED",
			Message:       ipe.Message,
			State:         string(StateProfileRequired),
			MissingFields: ipe.MissingFields,
		})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "CONFLICT",
			"message": ce.Message,
		})
		return
	}

	logger.Error("unexpected checkout error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
