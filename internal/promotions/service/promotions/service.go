package promotions

import (
	"context"
	"errors"
	"fmt"

	promotionRepo "github.com/m04kA/SMC-ReservationService/internal/promotions/infra/storage/promotion"
	"github.com/m04kA/SMC-ReservationService/internal/promotions/service/promotions/models"
)

// Service сервис для работы с акциями
type Service struct {
	promotionRepo PromotionRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса акций
func NewService(promotionRepo PromotionRepository, logger Logger) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		logger:        logger,
	}
}

// Create создает новую акцию
func (s *Service) Create(ctx context.Context, req *models.CreatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Create: creating promotion name=%s", req.Name)

	if err := validatePromotion(req.Name, req.DiscountPercent, req.MinHours); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	promotion, err := s.promotionRepo.Create(ctx, req.ToDomainPromotion())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created promotion id=%d", promotion.ID)
	return models.FromDomainPromotion(promotion), nil
}

// GetByID получает акцию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PromotionResponse, error) {
	s.logger.Info("GetByID: fetching promotion id=%d", id)

	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("GetByID: promotion id=%d not found", id)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("GetByID: repository error for promotion id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPromotion(promotion), nil
}

// GetByCode получает акцию по коду (уникальному имени)
func (s *Service) GetByCode(ctx context.Context, code string) (*models.PromotionResponse, error) {
	s.logger.Info("GetByCode: fetching promotion code=%s", code)

	promotion, err := s.promotionRepo.GetByName(ctx, code)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("GetByCode: promotion code=%s not found", code)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("GetByCode: repository error for promotion code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPromotion(promotion), nil
}

// List получает все акции
func (s *Service) List(ctx context.Context) (*models.PromotionListResponse, error) {
	s.logger.Info("List: fetching all promotions")

	promotions, err := s.promotionRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d promotions", len(promotions))
	return models.FromDomainPromotionList(promotions), nil
}

// Update обновляет акцию
func (s *Service) Update(ctx context.Context, req *models.UpdatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Update: updating promotion id=%d", req.ID)

	if err := validatePromotion(req.Name, req.DiscountPercent, req.MinHours); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	promotion := req.ToDomainPromotion()
	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Update: promotion id=%d not found", req.ID)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("Update: repository error for promotion id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated promotion id=%d", req.ID)
	return models.FromDomainPromotion(promotion), nil
}

// Delete удаляет акцию
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting promotion id=%d", id)

	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Delete: promotion id=%d not found", id)
			return ErrPromotionNotFound
		}
		s.logger.Error("Delete: repository error for promotion id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted promotion id=%d", id)
	return nil
}

// validatePromotion проверяет бизнес-ограничения акции
func validatePromotion(name string, discountPercent, minHours float64) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if discountPercent < 0 || discountPercent > 100 {
		return fmt.Errorf("%w: discountPercent must be between 0 and 100", ErrInvalidInput)
	}
	if minHours < 0 {
		return fmt.Errorf("%w: minHours must not be negative", ErrInvalidInput)
	}
	return nil
}
