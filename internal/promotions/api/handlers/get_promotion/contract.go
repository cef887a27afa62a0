package get_promotion

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions/models"
)

type PromotionService interface {
	GetByID(ctx context.Context, id int64) (*models.PromotionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
