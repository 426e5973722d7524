package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time overflows day boundary")
)

// TimeString типизированное время суток в формате HH:MM
// Заменяет свободные строки времени из форм на строго типизированное значение
type TimeString string

// NewTimeString создает TimeString из time.Time (часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", ErrTimeOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM (00:00 - 23:59)
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return ErrInvalidTimeString
	}
	h, ok1 := twoDigits(string(t[0:2]))
	m, ok2 := twoDigits(string(t[3:5]))
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return ErrInvalidTimeString
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
// Для невалидного значения возвращает ошибку
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	h, _ := twoDigits(string(t[0:2]))
	m, _ := twoDigits(string(t[3:5]))
	return h*60 + m, nil
}

// AddMinutes возвращает время, сдвинутое на minutes вперед
// Переход через полночь считается ошибкой
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	base, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := base + minutes
	if total >= minutesPerDay || total < 0 {
		return "", ErrTimeOverflow
	}
	return NewTimeStringFromMinutes(total)
}

// IsBefore проверяет строгое "раньше"
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет строгое "позже"
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает TEXT и TIME колонки
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(normalizeDBTime(v))
	case []byte:
		*t = TimeString(normalizeDBTime(string(v)))
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}

// normalizeDBTime обрезает секунды из значения TIME ("10:00:00" -> "10:00")
func normalizeDBTime(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	d1 := int(s[0] - '0')
	d2 := int(s[1] - '0')
	if d1 < 0 || d1 > 9 || d2 < 0 || d2 > 9 {
		return 0, false
	}
	return d1*10 + d2, true
}
