package update_reservation

import "time"

// Request модель запроса на обновление бронирования
// Совпадение ID тела и ID пути проверяется в handler до запуска usecase,
// чтобы при несовпадении не выполнять ни одного сетевого вызова
type Request struct {
	ID            int64
	UserID        int64
	ParkingSpot   string
	StartTime     time.Time
	EndTime       time.Time
	PromotionCode *string
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64
	UserID        int64
	ParkingSpot   string
	StartTime     time.Time
	EndTime       time.Time
	PromotionCode *string
	Cost          float64
}
