package get_promotion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions"
)

const (
	msgInvalidPromotionID = "invalid promotion ID"
	msgNotFound           = "promotion not found"
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

// Handle GET /api/v1/promotions/{promotionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	promotionIDStr := vars["promotionId"]

	promotionID, err := strconv.ParseInt(promotionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /promotions/{id} - Invalid promotion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromotionID)
		return
	}

	promotion, err := h.service.GetByID(r.Context(), promotionID)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrPromotionNotFound):
			h.logger.Warn("GET /promotions/{id} - Promotion not found: promotion_id=%d", promotionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /promotions/{id} - Failed to get promotion: promotion_id=%d, error=%v",
				promotionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /promotions/{id} - Promotion retrieved successfully: promotion_id=%d", promotionID)
	handlers.RespondJSON(w, http.StatusOK, promotion)
}
