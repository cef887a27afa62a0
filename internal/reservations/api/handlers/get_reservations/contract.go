package get_reservations

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/reservations/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
