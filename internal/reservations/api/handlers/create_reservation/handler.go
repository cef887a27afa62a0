package create_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/reservations/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidInput          = "invalid input data"
	msgInvalidTimePeriod     = "endTime must be after startTime"
	msgUserNotFound          = "user not found"
	msgUserLookupFailed      = "user lookup failed"
	msgPromotionNotFound     = "promotion not found"
	msgPromotionLookupFailed = "promotion lookup failed"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Недоступность зависимости намеренно отдаётся как 400, как и
		// business not found: внешний контракт не различает эти случаи
		var minHoursErr *domain.MinHoursNotMetError
		switch {
		case errors.As(err, &minHoursErr):
			h.logger.Warn("POST /reservations - Promotion minimum hours not met: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, minHoursErr.Error())

		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations - User not found: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgUserNotFound)

		case errors.Is(err, createReservation.ErrUserServiceUnavailable):
			h.logger.Warn("POST /reservations - User lookup failed: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgUserLookupFailed)

		case errors.Is(err, createReservation.ErrPromotionNotFound):
			h.logger.Warn("POST /reservations - Promotion not found: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgPromotionNotFound)

		case errors.Is(err, createReservation.ErrPromotionServiceUnavailable):
			h.logger.Warn("POST /reservations - Promotion lookup failed: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgPromotionLookupFailed)

		case errors.Is(err, createReservation.ErrInvalidTimePeriod):
			h.logger.Warn("POST /reservations - Invalid time period: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgInvalidTimePeriod)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v",
				req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, cost=%.2f",
		result.ID, result.UserID, result.Cost)
	handlers.RespondCreated(w, fmt.Sprintf("/api/v1/reservations/%d", result.ID), response)
}
