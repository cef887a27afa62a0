package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/promotionservice"
	"github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/userservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// PromotionServiceClient интерфейс клиента для PromotionService
type PromotionServiceClient interface {
	GetByCode(ctx context.Context, code string) (*promotionservice.Promotion, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
