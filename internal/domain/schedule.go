package domain

import (
	"time"

	"github.com/kmestetica/agenda-service/pkg/types"
)

// WeekSchedule represents the business-hours ruleset: a pure, total
// mapping from a calendar date to the slots that may be offered on it.
//
// Правила:
//   - один выходной день недели (по умолчанию воскресенье) - закрыто;
//   - один "короткий" день (по умолчанию суббота) - каталог обрезается
//     по часу cutoffHour: слоты, чей час больше cutoff, не предлагаются
//     (сам час cutoff остаётся, т.е. при cutoff=18 слоты 18:00 и 18:30
//     ещё доступны);
//   - длительность услуги фиксирована и намеренно не совпадает с шагом
//     сетки: при шаге 30 минут и услуге 60 минут соседние получасовые
//     слоты конфликтуют друг с другом.
type WeekSchedule struct {
	catalog []types.TimeString

	stepMinutes     int
	serviceDuration int

	closedWeekday time.Weekday
	shortWeekday  time.Weekday
	cutoffHour    int
}

// ScheduleParams параметры недельного расписания
type ScheduleParams struct {
	OpenTime               types.TimeString
	CloseTime              types.TimeString
	SlotStepMinutes        int
	ServiceDurationMinutes int
	ClosedWeekday          time.Weekday
	ShortWeekday           time.Weekday
	ShortDayCutoffHour     int
}

// NewWeekSchedule строит расписание и предвычисляет каталог слотов.
// Некорректные границы (open >= close) дают пустой каталог, а не ошибку:
// ruleset по контракту тотален.
func NewWeekSchedule(p ScheduleParams) *WeekSchedule {
	s := &WeekSchedule{
		stepMinutes:     p.SlotStepMinutes,
		serviceDuration: p.ServiceDurationMinutes,
		closedWeekday:   p.ClosedWeekday,
		shortWeekday:    p.ShortWeekday,
		cutoffHour:      p.ShortDayCutoffHour,
	}

	s.catalog = buildCatalog(p.OpenTime, p.CloseTime, p.SlotStepMinutes)
	return s
}

// DefaultWeekSchedule расписание с дефолтными значениями
// (07:00-20:30, шаг 30 минут, услуга 60 минут, воскресенье закрыто,
// суббота до 18 часов включительно)
func DefaultWeekSchedule() *WeekSchedule {
	return NewWeekSchedule(ScheduleParams{
		OpenTime:               types.TimeString(DefaultOpenTime),
		CloseTime:              types.TimeString(DefaultCloseTime),
		SlotStepMinutes:        DefaultSlotStepMinutes,
		ServiceDurationMinutes: DefaultServiceDurationMinutes,
		ClosedWeekday:          time.Sunday,
		ShortWeekday:           time.Saturday,
		ShortDayCutoffHour:     DefaultShortDayCutoffHour,
	})
}

// buildCatalog генерирует сетку слотов от открытия до закрытия
// с фиксированным шагом
func buildCatalog(open, close types.TimeString, step int) []types.TimeString {
	if step <= 0 || open.Validate() != nil || close.Validate() != nil {
		return []types.TimeString{}
	}

	catalog := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		catalog = append(catalog, current)

		next, err := current.AddMinutes(step)
		if err != nil {
			break
		}
		current = next
	}

	return catalog
}

// IsOpen returns false for the weekly closure day, true otherwise.
// No holiday calendar.
func (s *WeekSchedule) IsOpen(date time.Time) bool {
	return date.Weekday() != s.closedWeekday
}

// SlotsFor returns the slot catalog valid for the given date: the full
// catalog on ordinary open days, a truncated prefix on the short day and
// an empty sequence on closed days.
func (s *WeekSchedule) SlotsFor(date time.Time) []types.TimeString {
	if !s.IsOpen(date) {
		return []types.TimeString{}
	}

	if date.Weekday() != s.shortWeekday {
		out := make([]types.TimeString, len(s.catalog))
		copy(out, s.catalog)
		return out
	}

	// Короткий день: убираем слоты, чей час больше cutoff
	truncated := make([]types.TimeString, 0, len(s.catalog))
	for _, slot := range s.catalog {
		hour, err := slot.Hour()
		if err != nil || hour > s.cutoffHour {
			continue
		}
		truncated = append(truncated, slot)
	}
	return truncated
}

// Catalog returns the full slot grid regardless of date.
func (s *WeekSchedule) Catalog() []types.TimeString {
	out := make([]types.TimeString, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// ServiceDurationMinutes returns the fixed service duration used for
// overlap detection. Deliberately decoupled from the catalog step.
func (s *WeekSchedule) ServiceDurationMinutes() int {
	return s.serviceDuration
}

// StepMinutes returns the catalog listing step.
func (s *WeekSchedule) StepMinutes() int {
	return s.stepMinutes
}

// DailyCapacity returns how many non-overlapping service windows fit in
// an ordinary open day. Used for occupancy statistics.
func (s *WeekSchedule) DailyCapacity() int {
	if s.serviceDuration <= 0 || len(s.catalog) == 0 {
		return 0
	}
	openMinutes := len(s.catalog) * s.stepMinutes
	return openMinutes / s.serviceDuration
}
