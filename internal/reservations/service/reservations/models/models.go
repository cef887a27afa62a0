package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/reservations/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	ParkingSpot   string    `json:"parkingSpot"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	PromotionCode *string   `json:"promotionCode,omitempty"`
	Cost          float64   `json:"cost"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		ParkingSpot:   r.ParkingSpot,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		PromotionCode: r.PromotionCode,
		Cost:          r.Cost,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: items}
}
