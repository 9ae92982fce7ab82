package appointments

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/kmestetica/agenda-service/internal/domain"
	apptRepo "github.com/kmestetica/agenda-service/internal/infra/storage/appointment"
	"github.com/kmestetica/agenda-service/internal/service/appointments/models"
)

// occupancyWindowDays окно статистики занятости: столько дней назад
// и вперёд от сегодняшнего дня
const occupancyWindowDays = 15

// Service сервис для административных операций с записями
type Service struct {
	appointmentRepo AppointmentRepository
	schedule        *domain.WeekSchedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	schedule *domain.WeekSchedule,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List получает список записей, опционально отфильтрованный по дню.
// Записи отсортированы по дате и времени начала.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req.Date != nil {
		s.logger.Info("List: fetching appointments for %s", req.Date.Format(domain.DateFormat))
	} else {
		s.logger.Info("List: fetching all appointments")
	}

	appts, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{Date: req.Date})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// GetByPublicID получает запись по публичному идентификатору
func (s *Service) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByPublicID: fetching appointment %s", publicID)

	appt, err := s.appointmentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByPublicID: appointment %s not found", publicID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByPublicID: repository error for %s: %v", publicID, err)
		return nil, fmt.Errorf("%w: GetByPublicID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет запись по публичному идентификатору.
// Операция идемпотентна: повторная отмена уже отменённой записи
// завершается успешно.
func (s *Service) Cancel(ctx context.Context, publicID uuid.UUID) error {
	s.logger.Info("Cancel: cancelling appointment %s", publicID)

	err := s.appointmentRepo.DeleteByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Info("Cancel: appointment %s already cancelled", publicID)
			return nil
		}
		s.logger.Error("Cancel: repository error for %s: %v", publicID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment %s cancelled", publicID)
	return nil
}

// ClearAll удаляет все записи. Используется администратором
// для сброса агенды.
func (s *Service) ClearAll(ctx context.Context) error {
	s.logger.Warn("ClearAll: deleting all appointments")

	if err := s.appointmentRepo.DeleteAll(ctx); err != nil {
		s.logger.Error("ClearAll: repository error: %v", err)
		return fmt.Errorf("%w: ClearAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearAll: all appointments deleted")
	return nil
}

// Occupancy возвращает статистику занятости открытых дней в окне
// +-occupancyWindowDays от сегодняшнего дня
func (s *Service) Occupancy(ctx context.Context) (*models.OccupancyResponse, error) {
	today := s.timeProvider.Now()
	from := today.AddDate(0, 0, -occupancyWindowDays)
	to := today.AddDate(0, 0, occupancyWindowDays)

	s.logger.Info("Occupancy: computing for %s..%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	counts, err := s.appointmentRepo.CountByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Occupancy: repository error: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - repository error: %v", ErrInternal, err)
	}

	days := make([]models.OccupancyDay, 0, 2*occupancyWindowDays+1)
	for offset := -occupancyWindowDays; offset <= occupancyWindowDays; offset++ {
		date := today.AddDate(0, 0, offset)
		if !s.schedule.IsOpen(date) {
			continue
		}

		days = append(days, models.OccupancyDay{
			Date:     date.Format(domain.DateFormat),
			Weekday:  date.Weekday().String(),
			Booked:   counts[date.Format(domain.DateFormat)],
			Capacity: s.dayCapacity(date),
		})
	}

	return &models.OccupancyResponse{Days: days}, nil
}

// dayCapacity вычисляет вместимость конкретного дня с учётом
// укороченного каталога субботы
func (s *Service) dayCapacity(date time.Time) int {
	duration := s.schedule.ServiceDurationMinutes()
	if duration <= 0 {
		return 0
	}
	openMinutes := len(s.schedule.SlotsFor(date)) * s.schedule.StepMinutes()
	return openMinutes / duration
}

// ExportCSV выгружает все записи в CSV
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	s.logger.Info("ExportCSV: exporting appointments")

	appts, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{})
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	cw := csv.NewWriter(w)

	header := []string{"id", "date", "start_time", "client_name", "client_contact", "created_at"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}

	for _, appt := range appts {
		record := []string{
			appt.PublicID.String(),
			appt.DateKey(),
			appt.StartTime.String(),
			appt.ClientName,
			appt.ClientContact,
			appt.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w: ExportCSV - write record: %v", ErrInternal, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d appointments", len(appts))
	return nil
}
