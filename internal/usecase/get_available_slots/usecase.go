package get_available_slots

import (
	"context"
	"fmt"

	"github.com/kmestetica/agenda-service/internal/domain"
)

// UseCase use case для получения каталога слотов дня с доступностью
type UseCase struct {
	appointmentRepo AppointmentRepository
	schedule        *domain.WeekSchedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	schedule *domain.WeekSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Каталог слотов для даты: на закрытый день каталог пуст
	catalog := uc.schedule.SlotsFor(req.Date)
	if len(catalog) == 0 {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			DurationMinutes: uc.schedule.ServiceDurationMinutes(),
			Slots:           []domain.SlotAvailability{},
		}, nil
	}

	// 4. Получаем все записи на эту дату
	appointments, err := uc.appointmentRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrStoreUnavailable, err)
	}

	// 5. Вычисляем доступность для каждого слота каталога
	slots := calculateAvailability(catalog, uc.schedule.ServiceDurationMinutes(), req.Date, now, appointments)

	uc.logger.Info("GetAvailableSlots: %d slots (%d offerable) for %s",
		len(slots), len(offerableSlots(slots)), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		DurationMinutes: uc.schedule.ServiceDurationMinutes(),
		Slots:           slots,
	}, nil
}
