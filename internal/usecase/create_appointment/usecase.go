package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kmestetica/agenda-service/internal/domain"
	apptStorage "github.com/kmestetica/agenda-service/internal/infra/storage/appointment"
	"github.com/kmestetica/agenda-service/pkg/ptr"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	schedule        *domain.WeekSchedule
	txManager       TransactionManager
	messageBuilder  MessageBuilder
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	schedule *domain.WeekSchedule,
	txManager TransactionManager,
	messageBuilder MessageBuilder,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		schedule:        schedule,
		txManager:       txManager,
		messageBuilder:  messageBuilder,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Использует сериализуемую транзакцию для предотвращения гонки данных;
// уникальный индекс (appointment_date, start_time) в БД остаётся
// финальным арбитром для одновременных запросов на один и тот же слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, client=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.ClientName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что салон открыт в этот день
	if !uc.schedule.IsOpen(req.Date) {
		uc.logger.Warn("CreateAppointment: closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrDayClosed
	}

	// 4. Слот должен входить в каталог дня (учитывает короткую субботу)
	catalog := uc.schedule.SlotsFor(req.Date)
	if !slotInCatalog(catalog, req.StartTime) {
		uc.logger.Warn("CreateAppointment: slot %s is not in the catalog for %s",
			req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotAvailable
	}

	// 5. Прошедшие слоты забронировать нельзя
	if isDateInPast(req.Date, now) || (isSameDay(req.Date, now) && isSlotStarted(req.StartTime, now)) {
		uc.logger.Warn("CreateAppointment: slot %s on %s is in the past",
			req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotAvailable
	}

	// 6. Готовим запись и текст подтверждения
	appt := &domain.Appointment{
		Date:          req.Date,
		StartTime:     req.StartTime,
		ClientName:    strings.TrimSpace(req.ClientName),
		ClientContact: strings.TrimSpace(req.ClientContact),
	}
	appt.ConfirmationText = ptr.Ptr(uc.messageBuilder.ConfirmationMessage(appt))

	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем все записи на эту дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.ListByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrStoreUnavailable, err)
		}

		// 7.2. Проверяем пересечение с существующими записями.
		// Окно услуги шире шага сетки, поэтому конфликтуют и записи
		// на соседние получасовые слоты.
		overlapping, err := countOverlappingAppointments(req.StartTime, uc.schedule.ServiceDurationMinutes(), appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to count overlapping appointments: %v", ErrInternal, err)
		}
		if overlapping > 0 {
			uc.logger.Warn("CreateAppointment: slot %s on %s overlaps %d appointment(s)",
				req.StartTime, req.Date.Format(domain.DateFormat), overlapping)
			return ErrSlotNotAvailable
		}

		// 7.3. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptStorage.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s on %s already taken",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment %s for %s %s",
		result.PublicID, result.DateKey(), result.StartTime)

	// 8. Уведомление после фиксации транзакции; ошибки доставки
	// на результат бронирования не влияют
	if uc.notifier != nil {
		uc.notifier.AppointmentCreated(result)
	}

	confirmation := ""
	if result.ConfirmationText != nil {
		confirmation = *result.ConfirmationText
	}

	return &Response{
		PublicID:         result.PublicID,
		Date:             result.Date,
		StartTime:        result.StartTime,
		DurationMinutes:  uc.schedule.ServiceDurationMinutes(),
		ClientName:       result.ClientName,
		ClientContact:    result.ClientContact,
		ConfirmationText: confirmation,
		CreatedAt:        result.CreatedAt,
	}, nil
}
