package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/promotions/domain"
)

// CreatePromotionRequest запрос на создание акции
type CreatePromotionRequest struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discountPercent"`
	ValidFrom       time.Time `json:"validFrom"`
	ValidTo         time.Time `json:"validTo"`
	MinHours        float64   `json:"minHours"`
}

// UpdatePromotionRequest запрос на обновление акции
type UpdatePromotionRequest struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discountPercent"`
	ValidFrom       time.Time `json:"validFrom"`
	ValidTo         time.Time `json:"validTo"`
	MinHours        float64   `json:"minHours"`
}

// PromotionResponse ответ с данными акции
type PromotionResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discountPercent"`
	ValidFrom       time.Time `json:"validFrom"`
	ValidTo         time.Time `json:"validTo"`
	MinHours        float64   `json:"minHours"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PromotionListResponse ответ со списком акций
type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

// ToDomainPromotion конвертирует запрос на создание в domain модель
func (r *CreatePromotionRequest) ToDomainPromotion() *domain.Promotion {
	return &domain.Promotion{
		Name:            r.Name,
		Description:     r.Description,
		DiscountPercent: r.DiscountPercent,
		ValidFrom:       r.ValidFrom,
		ValidTo:         r.ValidTo,
		MinHours:        r.MinHours,
	}
}

// ToDomainPromotion конвертирует запрос на обновление в domain модель
func (r *UpdatePromotionRequest) ToDomainPromotion() *domain.Promotion {
	return &domain.Promotion{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		DiscountPercent: r.DiscountPercent,
		ValidFrom:       r.ValidFrom,
		ValidTo:         r.ValidTo,
		MinHours:        r.MinHours,
	}
}

// FromDomainPromotion конвертирует domain модель в DTO
func FromDomainPromotion(p *domain.Promotion) *PromotionResponse {
	if p == nil {
		return nil
	}

	return &PromotionResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		DiscountPercent: p.DiscountPercent,
		ValidFrom:       p.ValidFrom,
		ValidTo:         p.ValidTo,
		MinHours:        p.MinHours,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FromDomainPromotionList конвертирует список domain моделей в DTO
func FromDomainPromotionList(promotions []*domain.Promotion) *PromotionListResponse {
	items := make([]PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		items = append(items, *FromDomainPromotion(p))
	}
	return &PromotionListResponse{Promotions: items}
}
