package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
	updateReservation "github.com/m04kA/SMC-ReservationService/internal/reservations/usecase/update_reservation"
)

const (
	msgInvalidReservationID  = "invalid reservation ID"
	msgInvalidRequestBody    = "invalid request body"
	msgIDMismatch            = "id mismatch"
	msgInvalidInput          = "invalid input data"
	msgInvalidTimePeriod     = "endTime must be after startTime"
	msgNotFound              = "reservation not found"
	msgUserNotFound          = "user not found"
	msgUserLookupFailed      = "user lookup failed"
	msgPromotionNotFound     = "promotion not found"
	msgPromotionLookupFailed = "promotion lookup failed"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Несовпадение ID пути и тела отклоняется до любых внешних вызовов
	if req.ID != reservationID {
		h.logger.Warn("PUT /reservations/{id} - ID mismatch: path=%d, body=%d", reservationID, req.ID)
		handlers.RespondBadRequest(w, msgIDMismatch)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var minHoursErr *domain.MinHoursNotMetError
		switch {
		case errors.As(err, &minHoursErr):
			h.logger.Warn("PUT /reservations/{id} - Promotion minimum hours not met: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, minHoursErr.Error())

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrUserNotFound):
			h.logger.Warn("PUT /reservations/{id} - User not found: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgUserNotFound)

		case errors.Is(err, updateReservation.ErrUserServiceUnavailable):
			h.logger.Warn("PUT /reservations/{id} - User lookup failed: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgUserLookupFailed)

		case errors.Is(err, updateReservation.ErrPromotionNotFound):
			h.logger.Warn("PUT /reservations/{id} - Promotion not found: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgPromotionNotFound)

		case errors.Is(err, updateReservation.ErrPromotionServiceUnavailable):
			h.logger.Warn("PUT /reservations/{id} - Promotion lookup failed: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgPromotionLookupFailed)

		case errors.Is(err, updateReservation.ErrInvalidTimePeriod):
			h.logger.Warn("PUT /reservations/{id} - Invalid time period: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidTimePeriod)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d, cost=%.2f",
		result.ID, result.Cost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
