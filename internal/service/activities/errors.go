package activities

import "errors"

var (
	// ErrActivityTypeNotFound возвращается, когда тип активности не найден
	ErrActivityTypeNotFound = errors.New("activity type not found")

	// ErrDuplicateName возвращается при попытке создать тип с существующим именем
	ErrDuplicateName = errors.New("activity type name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
