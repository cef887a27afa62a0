package create_promotion

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions"
	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/promotions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promotions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	promotion, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("POST /promotions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /promotions - Failed to create promotion: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promotions - Promotion created successfully: promotion_id=%d", promotion.ID)
	handlers.RespondCreated(w, fmt.Sprintf("/api/v1/promotions/%d", promotion.ID), promotion)
}
