package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
	promotionClient "github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/promotionservice"
	userClient "github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/userservice"
)

// UseCase use case для создания бронирования
// Конвейер: валидация -> проверка пользователя -> получение акции (если указана)
// -> проверка минимальных часов -> расчет стоимости -> сохранение
// Шаги выполняются строго по порядку с остановкой на первой ошибке;
// запись в хранилище происходит только после успешной валидации
type UseCase struct {
	reservationRepo ReservationRepository
	userClient      UserServiceClient
	promotionClient PromotionServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	userClient UserServiceClient,
	promotionClient PromotionServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		userClient:      userClient,
		promotionClient: promotionClient,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, spot=%s, start=%s, end=%s",
		req.UserID, req.ParkingSpot, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование пользователя
	// Существование не кэшируется: проверка выполняется на каждый запрос
	if _, err := uc.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: user lookup failed for id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrUserServiceUnavailable, err)
	}

	durationHours := req.EndTime.Sub(req.StartTime).Hours()

	// 3. Получаем акцию, если код указан
	// Без кода скидка равна нулю и проверка минимальных часов не выполняется
	discountPercent := 0.0
	if req.PromotionCode != nil && *req.PromotionCode != "" {
		promotion, err := uc.promotionClient.GetByCode(ctx, *req.PromotionCode)
		if err != nil {
			if errors.Is(err, promotionClient.ErrPromotionNotFound) {
				uc.logger.Warn("CreateReservation: promotion code=%s not found", *req.PromotionCode)
				return nil, ErrPromotionNotFound
			}
			uc.logger.Error("CreateReservation: promotion lookup failed for code=%s: %v", *req.PromotionCode, err)
			return nil, fmt.Errorf("%w: %v", ErrPromotionServiceUnavailable, err)
		}

		// 4. Проверяем минимальную длительность для акции
		if !domain.MeetsMinHours(durationHours, promotion.MinHours) {
			uc.logger.Warn("CreateReservation: duration %.2fh below promotion minimum %.2fh (code=%s)",
				durationHours, promotion.MinHours, *req.PromotionCode)
			return nil, &domain.MinHoursNotMetError{MinHours: promotion.MinHours}
		}

		discountPercent = promotion.DiscountPercent
	}

	// 5. Рассчитываем стоимость
	cost := domain.ComputeCost(durationHours, discountPercent)

	// 6. Сохраняем бронирование (единственная запись за весь запрос)
	reservation := &domain.Reservation{
		UserID:        req.UserID,
		ParkingSpot:   req.ParkingSpot,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		PromotionCode: req.PromotionCode,
		Cost:          cost,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, cost=%.2f", created.ID, created.Cost)

	return &Response{
		ID:            created.ID,
		UserID:        created.UserID,
		ParkingSpot:   created.ParkingSpot,
		StartTime:     created.StartTime,
		EndTime:       created.EndTime,
		PromotionCode: created.PromotionCode,
		Cost:          created.Cost,
		CreatedAt:     created.CreatedAt,
		UpdatedAt:     created.UpdatedAt,
	}, nil
}
