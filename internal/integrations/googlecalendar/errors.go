package googlecalendar

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от моста
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrBridgeRejected возвращается, когда мост вернул status "error"
	ErrBridgeRejected = errors.New("googlecalendar client: bridge rejected request")
)
