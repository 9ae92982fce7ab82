package create_appointment

import (
	"context"
	"time"

	"github.com/kmestetica/agenda-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// ListByDate получает все записи на дату; внутри транзакции - с блокировкой (FOR UPDATE)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MessageBuilder строит текст подтверждения, который сохраняется вместе с записью
type MessageBuilder interface {
	ConfirmationMessage(appt *domain.Appointment) string
}

// Notifier получает событие о созданной записи после фиксации транзакции
type Notifier interface {
	AppointmentCreated(appt *domain.Appointment)
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
