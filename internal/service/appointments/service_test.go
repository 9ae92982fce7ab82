package appointments

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmestetica/agenda-service/internal/domain"
	apptRepo "github.com/kmestetica/agenda-service/internal/infra/storage/appointment"
	"github.com/kmestetica/agenda-service/internal/service/appointments/models"
	"github.com/kmestetica/agenda-service/pkg/types"
)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	appointments []*domain.Appointment
	counts       map[string]int

	deleted    []uuid.UUID
	deleteErr  error
	clearedAll bool
}

func (r *fakeRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if filter.Date == nil {
		return r.appointments, nil
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.DateKey() == filter.Date.Format(domain.DateFormat) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByPublicID(_ context.Context, publicID uuid.UUID) (*domain.Appointment, error) {
	for _, a := range r.appointments {
		if a.PublicID == publicID {
			return a, nil
		}
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (r *fakeRepo) DeleteByPublicID(_ context.Context, publicID uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, publicID)
	return nil
}

func (r *fakeRepo) DeleteAll(_ context.Context) error {
	r.clearedAll = true
	return nil
}

func (r *fakeRepo) CountByDateRange(_ context.Context, _, _ time.Time) (map[string]int, error) {
	return r.counts, nil
}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo, domain.DefaultWeekSchedule(), nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func testAppointment(date time.Time, start, name string) *domain.Appointment {
	return &domain.Appointment{
		ID:            1,
		PublicID:      uuid.New(),
		Date:          date,
		StartTime:     types.TimeString(start),
		ClientName:    name,
		ClientContact: "11987654321",
		CreatedAt:     time.Now(),
	}
}

func TestList_All(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.Local)
	repo := &fakeRepo{appointments: []*domain.Appointment{
		testAppointment(monday, "09:00", "Maria"),
		testAppointment(tuesday, "10:00", "Ana"),
	}}
	svc := newTestService(repo, monday)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
}

func TestList_FilterByDate(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.Local)
	repo := &fakeRepo{appointments: []*domain.Appointment{
		testAppointment(monday, "09:00", "Maria"),
		testAppointment(tuesday, "10:00", "Ana"),
	}}
	svc := newTestService(repo, monday)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Date: &monday})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Maria", resp.Appointments[0].ClientName)
}

func TestCancel_Idempotent(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, time.Now())

	id := uuid.New()
	require.NoError(t, svc.Cancel(context.Background(), id))

	// Повторная отмена несуществующей записи - тоже успех
	repo.deleteErr = apptRepo.ErrAppointmentNotFound
	assert.NoError(t, svc.Cancel(context.Background(), id))
}

func TestClearAll(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, time.Now())

	require.NoError(t, svc.ClearAll(context.Background()))
	assert.True(t, repo.clearedAll)
}

func TestOccupancy(t *testing.T) {
	// Понедельник 2026-03-02; окно 15 дней в обе стороны
	monday := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{counts: map[string]int{
		"2026-03-02": 3,
		"2026-03-07": 1, // суббота
	}}
	svc := newTestService(repo, monday)

	resp, err := svc.Occupancy(context.Background())
	require.NoError(t, err)

	byDate := make(map[string]models.OccupancyDay)
	for _, d := range resp.Days {
		byDate[d.Date] = d
		assert.NotEqual(t, time.Sunday.String(), d.Weekday)
	}

	// 31 день окна минус воскресенья
	assert.Len(t, resp.Days, 31-5)

	assert.Equal(t, 3, byDate["2026-03-02"].Booked)
	assert.Equal(t, 13, byDate["2026-03-02"].Capacity)
	assert.Equal(t, 0, byDate["2026-03-03"].Booked)

	// Суббота: каталог 07:00-18:30, 24 слота по 30 минут = 12 окон услуги
	assert.Equal(t, 1, byDate["2026-03-07"].Booked)
	assert.Equal(t, 12, byDate["2026-03-07"].Capacity)

	_, hasSunday := byDate["2026-03-08"]
	assert.False(t, hasSunday)
}

func TestExportCSV(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	repo := &fakeRepo{appointments: []*domain.Appointment{
		testAppointment(monday, "09:00", "Maria"),
	}}
	svc := newTestService(repo, monday)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,date,start_time,client_name,client_contact,created_at", lines[0])
	assert.Contains(t, lines[1], "2026-03-02")
	assert.Contains(t, lines[1], "09:00")
	assert.Contains(t, lines[1], "Maria")
}
