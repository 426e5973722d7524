package watch_schedules

type ScheduleHub interface {
	Subscribe() (<-chan []byte, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
