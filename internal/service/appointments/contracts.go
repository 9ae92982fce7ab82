package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kmestetica/agenda-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Appointment, error)
	DeleteByPublicID(ctx context.Context, publicID uuid.UUID) error
	DeleteAll(ctx context.Context) error
	CountByDateRange(ctx context.Context, from, to time.Time) (map[string]int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
