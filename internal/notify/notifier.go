package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kmestetica/agenda-service/internal/domain"
	"github.com/kmestetica/agenda-service/internal/integrations/whatsapp"
)

// EventAppointmentCreated тип события о созданной записи
const EventAppointmentCreated = "appointment.created"

// Event событие жизненного цикла записи
type Event struct {
	EventID     uuid.UUID
	Type        string
	Appointment *domain.Appointment
	OccurredAt  time.Time
}

// MessageSender интерфейс отправителя сообщений WhatsApp
type MessageSender interface {
	SendText(ctx context.Context, phone, message string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier отправляет клиенту подтверждение после создания записи.
// Отправка асинхронная: бронирование уже зафиксировано, ошибки доставки
// только логируются.
type Notifier struct {
	sender  MessageSender
	timeout time.Duration
	logger  Logger
}

// NewNotifier создает новый notifier. При sender=nil события только
// логируются (отправка выключена в конфигурации).
func NewNotifier(sender MessageSender, timeout time.Duration, logger Logger) *Notifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{
		sender:  sender,
		timeout: timeout,
		logger:  logger,
	}
}

// AppointmentCreated обрабатывает событие создания записи
func (n *Notifier) AppointmentCreated(appt *domain.Appointment) {
	event := Event{
		EventID:     uuid.New(),
		Type:        EventAppointmentCreated,
		Appointment: appt,
		OccurredAt:  time.Now(),
	}

	if n.sender == nil {
		n.logger.Info("Notify: event=%s id=%s appointment=%s (sending disabled)",
			event.Type, event.EventID, appt.PublicID)
		return
	}

	go n.dispatch(event)
}

func (n *Notifier) dispatch(event Event) {
	appt := event.Appointment

	phone, err := whatsapp.NormalizePhone(appt.ClientContact)
	if err != nil {
		n.logger.Warn("Notify: event=%s appointment=%s has invalid contact: %v",
			event.EventID, appt.PublicID, err)
		return
	}

	message := ""
	if appt.ConfirmationText != nil {
		message = *appt.ConfirmationText
	}
	if message == "" {
		message = NewMessageBuilder().ConfirmationMessage(appt)
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	if err := n.sender.SendText(ctx, phone, message); err != nil {
		n.logger.Error("Notify: event=%s failed to send confirmation for appointment=%s: %v",
			event.EventID, appt.PublicID, err)
		return
	}

	n.logger.Info("Notify: event=%s confirmation sent for appointment=%s", event.EventID, appt.PublicID)
}
