package save_schedule

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// Request модель запроса на сохранение шаблонов расписания
//
// Один запрос создает шаблон для каждого выбранного дня недели, либо
// разовый шаблон на конкретную дату. При заданном ReplacesID старый
// шаблон удаляется в той же транзакции
type Request struct {
	ActivityType string           // Название типа активности
	Weekdays     []string         // Дни недели ("จ.", "อ.", ...)
	Date         *time.Time       // Дата разового шаблона; исключает Weekdays
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время конца; пусто - точечный шаблон
	ReplacesID   *int64           // ID заменяемого шаблона (редактирование)
}

// Response модель ответа с созданными шаблонами
type Response struct {
	Templates []Template // Созданные шаблоны, по одному на день недели
}

// Template модель шаблона расписания в ответе
type Template struct {
	ID           int64            // ID шаблона
	ActivityType string           // Тип активности
	Weekday      string           // День недели
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время конца
	Date         *time.Time       // Дата разового шаблона
	CreatedDate  time.Time        // Время создания
}
