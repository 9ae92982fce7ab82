package get_available_slots

import (
	"time"

	"github.com/kmestetica/agenda-service/internal/domain"
	"github.com/kmestetica/agenda-service/pkg/types"
)

// calculateAvailability вычисляет доступность каждого слота каталога дня.
// Наружу отдаётся весь каталог: занятые и прошедшие слоты помечаются
// Available=false, а не вырезаются, чтобы клиент видел полную сетку дня.
func calculateAvailability(
	catalog []types.TimeString,
	serviceDuration int,
	requestDate time.Time,
	now time.Time,
	appointments []*domain.Appointment,
) []domain.SlotAvailability {
	result := make([]domain.SlotAvailability, len(catalog))

	for i, slotStart := range catalog {
		available := countOverlappingAppointments(slotStart, serviceDuration, appointments) == 0

		// Прошедшие слоты сегодняшнего дня недоступны
		if available && isSameDay(requestDate, now) && isSlotStarted(slotStart, now) {
			available = false
		}
		if available && isDateInPast(requestDate, now) {
			available = false
		}

		result[i] = domain.SlotAvailability{
			StartTime:       slotStart,
			DurationMinutes: serviceDuration,
			Available:       available,
		}
	}

	return result
}

// offerableSlots возвращает только предлагаемые к бронированию слоты
// (подмножество каталога с Available=true)
func offerableSlots(slots []domain.SlotAvailability) []types.TimeString {
	out := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.Available {
			out = append(out, slot.StartTime)
		}
	}
	return out
}

// countOverlappingAppointments подсчитывает количество записей, чьё окно услуги
// пересекается с окном кандидата.
// Пересечение есть только если интервалы действительно накладываются друг на друга.
// Если одна запись заканчивается ровно там, где начинается кандидат (или наоборот) -
// это НЕ пересечение.
//
// Примеры (услуга 60 минут):
// - Кандидат 10:00-11:00, запись 09:30-10:30 → ЕСТЬ пересечение (10:00-10:30)
// - Кандидат 10:00-11:00, запись 09:00-10:00 → НЕТ пересечения (граничат)
// - Кандидат 10:00-11:00, запись 11:00-12:00 → НЕТ пересечения (граничат)
func countOverlappingAppointments(candidateStart types.TimeString, serviceDuration int, appointments []*domain.Appointment) int {
	candidateEnd, err := candidateStart.AddMinutes(serviceDuration)
	if err != nil {
		// Если не можем вычислить конец окна, считаем что пересечений нет
		return 0
	}

	count := 0

	for _, appt := range appointments {
		apptStart := appt.StartTime
		apptEnd, err := appt.StartTime.AddMinutes(serviceDuration)
		if err != nil {
			continue
		}

		// Интервалы полуоткрытые [start, end): пересечение есть, только если
		// - начало записи СТРОГО раньше конца кандидата И
		// - конец записи СТРОГО позже начала кандидата
		//
		// Строгие неравенства (IsBefore, IsAfter) - чтобы граничные случаи
		// не считались пересечением
		if apptStart.IsBefore(candidateEnd) && apptEnd.IsAfter(candidateStart) {
			count++
		}
	}

	return count
}

// isSlotStarted проверяет, что слот уже начался (или начинается прямо сейчас)
// относительно текущего времени. Сравнение с точностью до минуты: слот 14:30
// при текущем времени 14:30 уже не предлагается.
func isSlotStarted(slot types.TimeString, now time.Time) bool {
	slotMinutes, err := slot.MinutesSinceMidnight()
	if err != nil {
		return true
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	return slotMinutes <= nowMinutes
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня).
// Сравниваются компоненты календарной даты, а не моменты времени:
// дата запроса может быть распарсена в UTC, а now приходит в локальной
// зоне, и сравнение моментов сдвигало бы границу дня.
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
