package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда обновляемое бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("update_reservation: user not found")

	// ErrUserServiceUnavailable возвращается, когда UserService недоступен
	ErrUserServiceUnavailable = errors.New("update_reservation: user lookup failed")

	// ErrPromotionNotFound возвращается, когда акция не найдена
	ErrPromotionNotFound = errors.New("update_reservation: promotion not found")

	// ErrPromotionServiceUnavailable возвращается, когда PromotionService недоступен
	ErrPromotionServiceUnavailable = errors.New("update_reservation: promotion lookup failed")

	// ErrInvalidTimePeriod возвращается, когда endTime не позже startTime
	ErrInvalidTimePeriod = errors.New("update_reservation: endTime must be after startTime")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
