package user

import "errors"

var (
	// ErrSubscriptionNotFound возвращается, когда у пользователя нет push-подписки
	ErrSubscriptionNotFound = errors.New("user.repository: push subscription not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
