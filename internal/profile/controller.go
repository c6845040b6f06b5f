package profile

import (
	"encoding/json"
	"net/http"
	"strings"

	"risorte/internal/domain"
	apperrors "risorte/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Controller struct {
	service *Service
	logger  *zap.Logger
}

func NewController(service *Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	p, err := c.service.Load(r.Context())
	if err != nil {
		logger.Error("profile load failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeProfile(w, p)
}

func (c *Controller) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	p := trimProfile(toDomainProfile(req))
	if err := c.service.Save(r.Context(), p); err != nil {
		logger.Error("profile save failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	logger.Info("profile saved")
	c.writeProfile(w, p)
}

func (c *Controller) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.service.Delete(r.Context()); err != nil {
		logger.Error("profile delete failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	logger.Info("profile deleted")
	c.writeProfile(w, domain.EmptyProfile())
}

// trimProfile normalizes whitespace on save; completeness checks trim again
// on read so records written by other clients still validate consistently.
func trimProfile(p domain.Profile) domain.Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	p.Address.Street = strings.TrimSpace(p.Address.Street)
	p.Address.Neighborhood = strings.TrimSpace(p.Address.Neighborhood)
	p.Address.City = strings.TrimSpace(p.Address.City)
	p.Address.Complement = strings.TrimSpace(p.Address.Complement)
	return p
}

func (c *Controller) writeProfile(w http.ResponseWriter, p domain.Profile) {
	c.writeJSON(w, http.StatusOK, ProfileResponse{
		Profile: toProfileDTO(p),
		Completeness: Completeness{
			Delivery: p.IsComplete(domain.ModeDelivery),
			Pickup:   p.IsComplete(domain.ModePickup),
		},
	})
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

func (c *Controller) writeInternalError(w http.ResponseWriter) {
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
