package get_promotion_by_code

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions/models"
)

type PromotionService interface {
	GetByCode(ctx context.Context, code string) (*models.PromotionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
