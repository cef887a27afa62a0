package get_promotion_by_code

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions"
)

const (
	msgMissingCode = "promotion code is required"
	msgNotFound    = "promotion not found"
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

// Handle GET /api/v1/promotions/code/{code}
// Основной путь поиска для ReservationService: код акции, а не ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	if code == "" {
		h.logger.Warn("GET /promotions/code/{code} - Missing promotion code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	promotion, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrPromotionNotFound):
			h.logger.Warn("GET /promotions/code/{code} - Promotion not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /promotions/code/{code} - Failed to get promotion: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /promotions/code/{code} - Promotion retrieved successfully: code=%s, promotion_id=%d",
		code, promotion.ID)
	handlers.RespondJSON(w, http.StatusOK, promotion)
}
