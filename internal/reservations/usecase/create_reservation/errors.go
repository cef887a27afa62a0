package create_reservation

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrUserServiceUnavailable возвращается, когда UserService недоступен
	// Намеренно отличается от ErrUserNotFound: падение зависимости - не бизнес-ответ
	ErrUserServiceUnavailable = errors.New("create_reservation: user lookup failed")

	// ErrPromotionNotFound возвращается, когда акция не найдена
	ErrPromotionNotFound = errors.New("create_reservation: promotion not found")

	// ErrPromotionServiceUnavailable возвращается, когда PromotionService недоступен
	ErrPromotionServiceUnavailable = errors.New("create_reservation: promotion lookup failed")

	// ErrInvalidTimePeriod возвращается, когда endTime не позже startTime
	ErrInvalidTimePeriod = errors.New("create_reservation: endTime must be after startTime")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
