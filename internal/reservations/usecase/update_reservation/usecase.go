package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/reservations/infra/storage/reservation"
	promotionClient "github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/promotionservice"
	userClient "github.com/m04kA/SMC-ReservationService/internal/reservations/integrations/userservice"
)

// UseCase use case для обновления бронирования
// Полностью повторяет конвейер создания против новых значений полей:
// стоимость пересчитывается и никогда не изменяется независимо от них
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

// Execute выполняет use case обновления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, user=%d, spot=%s, start=%s, end=%s",
		req.ID, req.UserID, req.ParkingSpot, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование пользователя
	if _, err := uc.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("UpdateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("UpdateReservation: user lookup failed for id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrUserServiceUnavailable, err)
	}

	durationHours := req.EndTime.Sub(req.StartTime).Hours()

	// 3. Получаем акцию, если код указан
	discountPercent := 0.0
	if req.PromotionCode != nil && *req.PromotionCode != "" {
		promotion, err := uc.promotionClient.GetByCode(ctx, *req.PromotionCode)
		if err != nil {
			if errors.Is(err, promotionClient.ErrPromotionNotFound) {
				uc.logger.Warn("UpdateReservation: promotion code=%s not found", *req.PromotionCode)
				return nil, ErrPromotionNotFound
			}
			uc.logger.Error("UpdateReservation: promotion lookup failed for code=%s: %v", *req.PromotionCode, err)
			return nil, fmt.Errorf("%w: %v", ErrPromotionServiceUnavailable, err)
		}

		// 4. Проверяем минимальную длительность для акции
		if !domain.MeetsMinHours(durationHours, promotion.MinHours) {
			uc.logger.Warn("UpdateReservation: duration %.2fh below promotion minimum %.2fh (code=%s)",
				durationHours, promotion.MinHours, *req.PromotionCode)
			return nil, &domain.MinHoursNotMetError{MinHours: promotion.MinHours}
		}

		discountPercent = promotion.DiscountPercent
	}

	// 5. Пересчитываем стоимость
	cost := domain.ComputeCost(durationHours, discountPercent)

	// 6. Перезаписываем бронирование
	reservation := &domain.Reservation{
		ID:            req.ID,
		UserID:        req.UserID,
		ParkingSpot:   req.ParkingSpot,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		PromotionCode: req.PromotionCode,
		Cost:          cost,
	}

	if err := uc.reservationRepo.Update(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d, cost=%.2f", req.ID, cost)

	return &Response{
		ID:            reservation.ID,
		UserID:        reservation.UserID,
		ParkingSpot:   reservation.ParkingSpot,
		StartTime:     reservation.StartTime,
		EndTime:       reservation.EndTime,
		PromotionCode: reservation.PromotionCode,
		Cost:          reservation.Cost,
	}, nil
}
