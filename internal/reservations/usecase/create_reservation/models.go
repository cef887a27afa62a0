package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64     // ID пользователя (проверяется через UserService)
	ParkingSpot   string    // Метка парковочного места
	StartTime     time.Time // Начало бронирования
	EndTime       time.Time // Конец бронирования
	PromotionCode *string   // Код акции (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	ParkingSpot   string
	StartTime     time.Time
	EndTime       time.Time
	PromotionCode *string
	Cost          float64 // Вычисленная стоимость

	CreatedAt time.Time
	UpdatedAt time.Time
}
