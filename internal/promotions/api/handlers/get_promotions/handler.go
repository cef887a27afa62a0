package get_promotions

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/promotions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	promotionsList, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /promotions - Failed to list promotions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /promotions - Promotions listed successfully: count=%d", len(promotionsList.Promotions))
	handlers.RespondJSON(w, http.StatusOK, promotionsList)
}
