package get_available_days

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmestetica/agenda-service/internal/domain"
)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(now time.Time) *UseCase {
	uc := NewUseCase(domain.DefaultWeekSchedule(), 0, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_SkipsClosedDays(t *testing.T) {
	// Пятница 2026-03-06: окно из 6 дней должно перешагнуть воскресенье 08.03
	friday := time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)
	uc := newTestUseCase(friday)

	resp, err := uc.Execute(context.Background(), &Request{WindowSize: 6})
	require.NoError(t, err)
	require.Len(t, resp.Days, 6)

	expected := []string{
		"2026-03-06", // пт
		"2026-03-07", // сб
		"2026-03-09", // пн (воскресенье пропущено)
		"2026-03-10",
		"2026-03-11",
		"2026-03-12",
	}
	for i, day := range resp.Days {
		assert.Equal(t, expected[i], day.DateKey())
		assert.NotEqual(t, time.Sunday, day.Weekday)
	}
}

func TestExecute_StartsToday(t *testing.T) {
	monday := time.Date(2026, 3, 2, 23, 30, 0, 0, time.Local)
	uc := newTestUseCase(monday)

	resp, err := uc.Execute(context.Background(), &Request{WindowSize: 3})
	require.NoError(t, err)
	require.Len(t, resp.Days, 3)

	// Сегодняшний день входит в окно независимо от текущего времени;
	// прошедшие слоты отфильтрует расчёт доступности
	assert.Equal(t, "2026-03-02", resp.Days[0].DateKey())
}

func TestExecute_SundayStart(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 9, 0, 0, 0, time.Local)
	uc := newTestUseCase(sunday)

	resp, err := uc.Execute(context.Background(), &Request{WindowSize: 2})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2026-03-09", resp.Days[0].DateKey())
	assert.Equal(t, "2026-03-10", resp.Days[1].DateKey())
}

func TestExecute_DefaultWindowSize(t *testing.T) {
	uc := newTestUseCase(time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, resp.Days, domain.DefaultDayWindowSize)
}

func TestExecute_ConfiguredWindowSize(t *testing.T) {
	uc := NewUseCase(domain.DefaultWeekSchedule(), 9, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)}

	// Размер окна из конфигурации применяется, когда клиент его не задал
	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 9)

	// Явный размер из запроса имеет приоритет
	resp, err = uc.Execute(context.Background(), &Request{WindowSize: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 2)
}

func TestExecute_InvalidWindowSize(t *testing.T) {
	uc := newTestUseCase(time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), &Request{WindowSize: maxWindowSize + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{WindowSize: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
