package update_promotion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions"
	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions/models"
)

const (
	msgInvalidPromotionID = "invalid promotion ID"
	msgInvalidRequestBody = "invalid request body"
	msgIDMismatch         = "id mismatch"
	msgInvalidInput       = "invalid input data"
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

// Handle PUT /api/v1/promotions/{promotionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	promotionIDStr := vars["promotionId"]

	promotionID, err := strconv.ParseInt(promotionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /promotions/{id} - Invalid promotion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromotionID)
		return
	}

	var req models.UpdatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /promotions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// ID в пути и в теле запроса должны совпадать
	if req.ID != promotionID {
		h.logger.Warn("PUT /promotions/{id} - ID mismatch: path_id=%d, body_id=%d", promotionID, req.ID)
		handlers.RespondBadRequest(w, msgIDMismatch)
		return
	}

	promotion, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("PUT /promotions/{id} - Invalid input: promotion_id=%d, error=%v", promotionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, promotions.ErrPromotionNotFound):
			h.logger.Warn("PUT /promotions/{id} - Promotion not found: promotion_id=%d", promotionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /promotions/{id} - Failed to update promotion: promotion_id=%d, error=%v",
				promotionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /promotions/{id} - Promotion updated successfully: promotion_id=%d", promotionID)
	handlers.RespondJSON(w, http.StatusOK, promotion)
}
