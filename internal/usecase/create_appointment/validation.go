package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/kmestetica/agenda-service/internal/domain"
	"github.com/kmestetica/agenda-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must be at most %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	contact := strings.TrimSpace(req.ClientContact)
	if contact == "" {
		return fmt.Errorf("%w: clientContact is required", ErrInvalidInput)
	}
	if len(contact) > domain.MaxClientContactLength {
		return fmt.Errorf("%w: clientContact must be at most %d characters", ErrInvalidInput, domain.MaxClientContactLength)
	}

	return nil
}

// slotInCatalog проверяет, что слот входит в каталог дня
func slotInCatalog(catalog []types.TimeString, slot types.TimeString) bool {
	for _, s := range catalog {
		if s == slot {
			return true
		}
	}
	return false
}

// countOverlappingAppointments подсчитывает количество записей, чьё окно услуги
// пересекается с окном кандидата. Интервалы полуоткрытые [start, end):
// граничащие записи пересечением не считаются.
func countOverlappingAppointments(
	candidateStart types.TimeString,
	serviceDuration int,
	appointments []*domain.Appointment,
) (int, error) {
	candidateEnd, err := candidateStart.AddMinutes(serviceDuration)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, appt := range appointments {
		apptStart := appt.StartTime
		apptEnd, err := appt.StartTime.AddMinutes(serviceDuration)
		if err != nil {
			continue
		}

		// Строгие неравенства: граничные случаи не считаются пересечением
		if apptStart.IsBefore(candidateEnd) && apptEnd.IsAfter(candidateStart) {
			count++
		}
	}

	return count, nil
}

// isSlotStarted проверяет, что слот уже начался относительно текущего времени.
// Сравнение с точностью до минуты.
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
