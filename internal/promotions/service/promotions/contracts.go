package promotions

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/promotions/domain"
)

// PromotionRepository интерфейс репозитория акций
type PromotionRepository interface {
	Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	GetByName(ctx context.Context, name string) (*domain.Promotion, error)
	List(ctx context.Context) ([]*domain.Promotion, error)
	Update(ctx context.Context, promotion *domain.Promotion) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
