package promotionservice

import "errors"

var (
	// ErrPromotionNotFound возвращается, когда акция не найдена (корректный 404 от сервиса)
	ErrPromotionNotFound = errors.New("promotionservice client: promotion not found")

	// ErrServiceUnavailable возвращается при сетевой ошибке или timeout'е
	ErrServiceUnavailable = errors.New("promotionservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("promotionservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("promotionservice client: internal error")
)
