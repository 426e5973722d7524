package get_available_slots

import (
	"sort"
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день
// из шаблонов расписания
//
// Диапазонный шаблон (start != end) нарезается с шагом в длительность записи:
// слот входит, пока его конец не выходит за конец шаблона. Точечный шаблон
// (start == end) дает ровно один слот. Дубликаты из пересекающихся шаблонов
// схлопываются.
func generateTimeSlots(
	templates []*domain.ScheduleTemplate,
	requestDate time.Time,
	durationMinutes int,
) []types.TimeString {
	seen := make(map[types.TimeString]struct{})

	for _, tpl := range templates {
		if !tpl.AppliesTo(requestDate) {
			continue
		}
		// Шаблоны с битым временем пропускаем молча
		if tpl.StartTime.Validate() != nil || tpl.EndTime.Validate() != nil {
			continue
		}

		if tpl.IsSingleTime() {
			seen[tpl.StartTime] = struct{}{}
			continue
		}

		current := tpl.StartTime
		for {
			slotEnd, err := current.AddMinutes(durationMinutes)
			if err != nil {
				break
			}
			if slotEnd.IsAfter(tpl.EndTime) {
				break
			}

			seen[current] = struct{}{}
			current = slotEnd
		}
	}

	slots := make([]types.TimeString, 0, len(seen))
	for slot := range seen {
		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].IsBefore(slots[j])
	})

	return slots
}

// filterBookedSlots убирает слоты, пересекающиеся с активными бронированиями
//
// Интервалы полуоткрытые: бронирование, заканчивающееся ровно в начале слота,
// пересечением не считается
func filterBookedSlots(
	slots []types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) []types.TimeString {
	available := make([]types.TimeString, 0, len(slots))

	for _, slotStart := range slots {
		if !overlapsActiveBooking(slotStart, durationMinutes, bookings) {
			available = append(available, slotStart)
		}
	}

	return available
}

// filterPastSlots убирает уже прошедшие слоты, если запрошена сегодняшняя дата
// Для других дат список возвращается как есть
func filterPastSlots(slots []types.TimeString, requestDate, now time.Time) []types.TimeString {
	if requestDate.Year() != now.Year() ||
		requestDate.Month() != now.Month() ||
		requestDate.Day() != now.Day() {
		return slots
	}

	cutoff := types.NewTimeString(now)
	upcoming := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(cutoff) {
			upcoming = append(upcoming, slot)
		}
	}

	return upcoming
}

func overlapsActiveBooking(slotStart types.TimeString, durationMinutes int, bookings []*domain.Booking) bool {
	slotEnd, err := slotStart.AddMinutes(durationMinutes)
	if err != nil {
		return true
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart) {
			return true
		}
	}

	return false
}
