package update_promotion

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions/models"
)

type PromotionService interface {
	Update(ctx context.Context, req *models.UpdatePromotionRequest) (*models.PromotionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
