package googlecalendar

// EventRequest запрос на создание события в Google Calendar
// Времена - RFC3339 в часовом поясе клиники
type EventRequest struct {
	Title       string `json:"title"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	ColorID     string `json:"colorId,omitempty"`
}

// deleteRequest запрос на удаление события
// Мост различает создание и удаление по полю action
type deleteRequest struct {
	Action  string `json:"action"`
	EventID string `json:"eventId"`
}

// bridgeResponse ответ моста на POST-запросы
type bridgeResponse struct {
	Status  string `json:"status"`
	EventID string `json:"eventId,omitempty"`
	Message string `json:"message,omitempty"`
}

// Event событие календаря в ответе на запрос списка
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

const (
	statusSuccess = "success"

	actionDelete = "delete"
)
