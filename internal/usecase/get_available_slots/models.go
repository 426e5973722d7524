package get_available_slots

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ActivityType    string    // Название типа активности
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Желаемая длительность; 0 - длительность по умолчанию
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ActivityType    string    // Тип активности
	DurationMinutes int       // Применённая длительность
	Slots           []Slot    // Список доступных слотов, по возрастанию времени
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
	ActivityType    string           // Тип активности слота
}
