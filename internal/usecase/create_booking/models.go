package create_booking

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID пользователя
	Title     string           // Название записи
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")

	// Длительность: либо пресет ("30 นาที", "1.5 ชั่วโมง"), либо
	// произвольное значение с единицей. Пустые поля - длительность
	// по умолчанию
	Duration            string // Пресет длительности
	CustomDurationValue string // Произвольное значение ("45", "1.5")
	CustomDurationUnit  string // Единица: "นาที" или "ชั่วโมง"

	ActivityType  string  // Название типа активности
	MeetingFormat string  // "Online" или "On-site"; пусто - Online
	Description   *string // Описание (опционально)
	Location      *string // Место встречи (опционально)
	Subject       *string // Тема (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	UserID          int64            // ID пользователя
	Title           string           // Название
	BookingDate     time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи
	ActivityType    string           // Тип активности
	MeetingFormat   string           // Формат встречи

	Description *string // Описание
	Location    *string // Место встречи
	Subject     *string // Тема

	// ID события в Google Calendar
	GoogleCalendarEventID *string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
