package activity

import "errors"

var (
	// ErrActivityTypeNotFound возвращается, когда тип активности не найден
	ErrActivityTypeNotFound = errors.New("activity.repository: activity type not found")

	// ErrDuplicateName возвращается при попытке создать тип с существующим именем
	ErrDuplicateName = errors.New("activity.repository: activity type name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("activity.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("activity.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("activity.repository: failed to scan row")
)
