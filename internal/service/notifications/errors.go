package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда будильник не найден
	// или принадлежит другому пользователю
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
