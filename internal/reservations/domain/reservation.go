package domain

import "time"

// Reservation бронирование парковочного места
type Reservation struct {
	ID            int64
	UserID        int64
	ParkingSpot   string
	StartTime     time.Time
	EndTime       time.Time
	PromotionCode *string
	// Cost вычисляется при создании/обновлении и никогда не принимается от клиента
	Cost float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationHours возвращает длительность бронирования в часах (дробное значение)
func (r *Reservation) DurationHours() float64 {
	return r.EndTime.Sub(r.StartTime).Hours()
}

// HasPromotion returns true if a promotion code is attached
func (r *Reservation) HasPromotion() bool {
	return r.PromotionCode != nil && *r.PromotionCode != ""
}
