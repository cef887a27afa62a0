package update_reservation

import (
	"time"

	updateReservation "github.com/m04kA/SMC-ReservationService/internal/reservations/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	ParkingSpot   string    `json:"parkingSpot"`
	StartTime     time.Time `json:"startTime"` // RFC3339
	EndTime       time.Time `json:"endTime"`   // RFC3339
	PromotionCode *string   `json:"promotionCode,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	ParkingSpot   string    `json:"parkingSpot"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	PromotionCode *string   `json:"promotionCode,omitempty"`
	Cost          float64   `json:"cost"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest() *updateReservation.Request {
	return &updateReservation.Request{
		ID:            r.ID,
		UserID:        r.UserID,
		ParkingSpot:   r.ParkingSpot,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		PromotionCode: r.PromotionCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		ParkingSpot:   resp.ParkingSpot,
		StartTime:     resp.StartTime,
		EndTime:       resp.EndTime,
		PromotionCode: resp.PromotionCode,
		Cost:          resp.Cost,
	}
}
