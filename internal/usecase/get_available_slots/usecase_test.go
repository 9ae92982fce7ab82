package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmestetica/agenda-service/internal/domain"
	"github.com/kmestetica/agenda-service/pkg/types"
)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (r *fakeAppointmentRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.appointments, nil
}

func newTestUseCase(repo *fakeAppointmentRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, domain.DefaultWeekSchedule(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_OrdinaryDay(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)

	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{Date: monday, StartTime: types.TimeString("09:00")},
	}}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, resp.Slots, 27)

	offerable := offerableSlots(resp.Slots)
	// 27 слотов каталога минус три, пересекающиеся с записью 09:00-10:00
	assert.Len(t, offerable, 24)
	assert.NotContains(t, offerable, types.TimeString("09:00"))
	assert.NotContains(t, offerable, types.TimeString("09:30"))
	assert.NotContains(t, offerable, types.TimeString("08:30"))
	assert.Contains(t, offerable, types.TimeString("10:00"))
}

func TestExecute_SundayEmpty(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 3, 6, 12, 0, 0, 0, time.Local)

	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SaturdayTruncated(t *testing.T) {
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 3, 6, 12, 0, 0, 0, time.Local)

	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})
	require.NoError(t, err)

	// Суббота: каталог до 18:30 включительно, слоты с часом больше 18 отрезаны
	require.NotEmpty(t, resp.Slots)
	last := resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, types.TimeString("18:30"), last.StartTime)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	repo := &fakeAppointmentRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), &Request{Date: monday})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
