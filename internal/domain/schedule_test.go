package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmestetica/agenda-service/pkg/types"
)

// Опорные даты: 2026-03-02 понедельник, 2026-03-07 суббота, 2026-03-08 воскресенье
var (
	monday   = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	saturday = time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local)
	sunday   = time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local)
)

func TestCatalogGeneration(t *testing.T) {
	s := DefaultWeekSchedule()

	catalog := s.Catalog()
	require.Len(t, catalog, 27) // 07:00 .. 20:00 с шагом 30 минут
	assert.Equal(t, types.TimeString("07:00"), catalog[0])
	assert.Equal(t, types.TimeString("07:30"), catalog[1])
	assert.Equal(t, types.TimeString("20:00"), catalog[len(catalog)-1])
}

func TestIsOpen(t *testing.T) {
	s := DefaultWeekSchedule()

	assert.True(t, s.IsOpen(monday))
	assert.True(t, s.IsOpen(saturday))
	assert.False(t, s.IsOpen(sunday))
}

func TestSlotsFor_ClosedDay(t *testing.T) {
	s := DefaultWeekSchedule()

	assert.Empty(t, s.SlotsFor(sunday))
}

func TestSlotsFor_OrdinaryDay(t *testing.T) {
	s := DefaultWeekSchedule()

	slots := s.SlotsFor(monday)
	assert.Equal(t, s.Catalog(), slots)
}

func TestSlotsFor_ShortDayTruncation(t *testing.T) {
	s := DefaultWeekSchedule()

	slots := s.SlotsFor(saturday)
	require.NotEmpty(t, slots)

	// Час cutoff (18) остаётся целиком, всё что позже - обрезано
	assert.Equal(t, types.TimeString("18:30"), slots[len(slots)-1])
	for _, slot := range slots {
		hour, err := slot.Hour()
		require.NoError(t, err)
		assert.LessOrEqual(t, hour, 18, "slot %s must not exceed cutoff hour", slot)
	}

	// Порядок каталога сохраняется
	assert.Equal(t, s.Catalog()[:len(slots)], slots)
}

func TestSlotsFor_ReturnsCopy(t *testing.T) {
	s := DefaultWeekSchedule()

	slots := s.SlotsFor(monday)
	slots[0] = "00:00"
	assert.Equal(t, types.TimeString("07:00"), s.SlotsFor(monday)[0])
}

func TestDailyCapacity(t *testing.T) {
	s := DefaultWeekSchedule()

	// 27 слотов * 30 минут = 810 минут; услуга 60 минут -> 13 окон
	assert.Equal(t, 13, s.DailyCapacity())
}

func TestNewWeekSchedule_InvalidBounds(t *testing.T) {
	s := NewWeekSchedule(ScheduleParams{
		OpenTime:               "20:00",
		CloseTime:              "08:00",
		SlotStepMinutes:        30,
		ServiceDurationMinutes: 60,
		ClosedWeekday:          time.Sunday,
		ShortWeekday:           time.Saturday,
		ShortDayCutoffHour:     18,
	})

	assert.Empty(t, s.Catalog())
	assert.Empty(t, s.SlotsFor(monday))
}
