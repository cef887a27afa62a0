package userservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден (корректный 404 от сервиса)
	ErrUserNotFound = errors.New("userservice client: user not found")

	// ErrServiceUnavailable возвращается при сетевой ошибке или timeout'е
	ErrServiceUnavailable = errors.New("userservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")
)
