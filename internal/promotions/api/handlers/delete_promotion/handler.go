package delete_promotion

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

// Handle DELETE /api/v1/promotions/{promotionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	promotionIDStr := vars["promotionId"]

	promotionID, err := strconv.ParseInt(promotionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /promotions/{id} - Invalid promotion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromotionID)
		return
	}

	if err := h.service.Delete(r.Context(), promotionID); err != nil {
		switch {
		case errors.Is(err, promotions.ErrPromotionNotFound):
			h.logger.Warn("DELETE /promotions/{id} - Promotion not found: promotion_id=%d", promotionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /promotions/{id} - Failed to delete promotion: promotion_id=%d, error=%v",
				promotionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /promotions/{id} - Promotion deleted successfully: promotion_id=%d", promotionID)
	handlers.RespondNoContent(w)
}
