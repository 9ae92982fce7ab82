package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmestetica/agenda-service/internal/domain"
	apptStorage "github.com/kmestetica/agenda-service/internal/infra/storage/appointment"
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
	createErr    error
	listErr      error
	created      *domain.Appointment
}

func (r *fakeRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.appointments, nil
}

func (r *fakeRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *appt
	created.ID = 1
	created.PublicID = uuid.New()
	created.CreatedAt = time.Now()
	r.created = &created
	return &created, nil
}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMessageBuilder struct{}

func (fakeMessageBuilder) ConfirmationMessage(appt *domain.Appointment) string {
	return "confirmation for " + appt.ClientName
}

type recordingNotifier struct {
	events []*domain.Appointment
}

func (n *recordingNotifier) AppointmentCreated(appt *domain.Appointment) {
	n.events = append(n.events, appt)
}

func newTestUseCase(repo *fakeRepo, now time.Time) (*UseCase, *recordingNotifier) {
	notifier := &recordingNotifier{}
	uc := NewUseCase(repo, domain.DefaultWeekSchedule(), fakeTxManager{}, fakeMessageBuilder{}, notifier, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, notifier
}

func validRequest() *Request {
	return &Request{
		Date:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), // понедельник
		StartTime:     types.TimeString("10:00"),
		ClientName:    "Maria Silva",
		ClientContact: "11987654321",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	uc, notifier := newTestUseCase(repo, time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.PublicID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	assert.Equal(t, "confirmation for Maria Silva", resp.ConfirmationText)

	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.ConfirmationText)

	// Уведомление отправлено после создания
	require.Len(t, notifier.events, 1)
	assert.Equal(t, resp.PublicID, notifier.events[0].PublicID)
}

func TestExecute_TodayWithUTCDateAndLocalNow(t *testing.T) {
	repo := &fakeRepo{}
	// Дата запроса распарсена в UTC, сервер западнее UTC (BRT, UTC-3).
	// Календарный день тот же, слот 10:00 ещё впереди: запись должна пройти.
	brt := time.FixedZone("BRT", -3*3600)
	uc, notifier := newTestUseCase(repo, time.Date(2026, 3, 2, 8, 0, 0, 0, brt))

	req := validRequest()
	req.Date = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	require.Len(t, notifier.events, 1)
}

func TestExecute_SlotOccupied(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{Date: date, StartTime: types.TimeString("10:00")},
	}}
	uc, notifier := newTestUseCase(repo, time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, notifier.events)
}

func TestExecute_AdjacentSlotConflicts(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	// Запись 09:30-10:30 пересекается с кандидатом 10:00-11:00
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{Date: date, StartTime: types.TimeString("09:30")},
	}}
	uc, _ := newTestUseCase(repo, time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_TouchingSlotAllowed(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	// Запись 09:00-10:00 граничит с кандидатом 10:00-11:00, конфликта нет
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{Date: date, StartTime: types.TimeString("09:00")},
	}}
	uc, _ := newTestUseCase(repo, time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_UniqueViolationMapsToSlotNotAvailable(t *testing.T) {
	repo := &fakeRepo{createErr: apptStorage.ErrSlotTaken}
	uc, _ := newTestUseCase(repo, time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SundayClosed(t *testing.T) {
	uc, _ := newTestUseCase(&fakeRepo{}, time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local))

	req := validRequest()
	req.Date = time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_SaturdayEveningOutsideCatalog(t *testing.T) {
	uc, _ := newTestUseCase(&fakeRepo{}, time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local))

	req := validRequest()
	req.Date = time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local) // суббота
	req.StartTime = types.TimeString("19:00")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastSlotToday(t *testing.T) {
	// Сейчас понедельник 10:00: слот 10:00 сегодня уже не предлагается
	uc, _ := newTestUseCase(&fakeRepo{}, time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastDate(t *testing.T) {
	uc, _ := newTestUseCase(&fakeRepo{}, time.Date(2026, 3, 3, 8, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	uc, _ := newTestUseCase(repo, time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(&fakeRepo{}, time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"bad start time", func(r *Request) { r.StartTime = "25:70" }},
		{"empty name", func(r *Request) { r.ClientName = "   " }},
		{"empty contact", func(r *Request) { r.ClientContact = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
