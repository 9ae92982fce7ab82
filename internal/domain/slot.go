package domain

import (
	"time"

	"github.com/kmestetica/agenda-service/pkg/types"
)

// DaySlot represents one entry of the rolling day window offered to
// clients. Not persisted; recomputed on each load.
type DaySlot struct {
	Date    time.Time
	Weekday time.Weekday
}

// DateKey returns the YYYY-MM-DD key of the day.
func (d *DaySlot) DateKey() string {
	return d.Date.Format(DateFormat)
}

// DayNumber returns the day of month (for calendar rendering).
func (d *DaySlot) DayNumber() int {
	return d.Date.Day()
}

// SlotAvailability represents one catalog slot of a concrete date with
// its availability flag. Занятые и прошедшие слоты виджет показывает
// как неактивные, поэтому наружу отдаётся весь каталог с флагом,
// а не только свободные слоты.
type SlotAvailability struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}
