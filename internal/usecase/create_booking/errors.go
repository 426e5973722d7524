package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDuration возвращается при некорректной длительности записи
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrActivityTypeNotFound возвращается, когда тип активности не найден
	ErrActivityTypeNotFound = errors.New("create_booking: activity type not found")

	// ErrInvalidTimeSlot возвращается, когда запись не помещается в сутки
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrPastTimeSlot возвращается при попытке записаться на прошедшее время
	ErrPastTimeSlot = errors.New("create_booking: time slot is in the past")

	// ErrCalendarUnavailable возвращается, когда не удалось создать событие
	// в календаре. Запись подтверждается только после успешного создания
	// события, поэтому ошибка прерывает бронирование
	ErrCalendarUnavailable = errors.New("create_booking: calendar unavailable")

	// ErrSlotTaken возвращается, когда выбранное время уже занято
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
