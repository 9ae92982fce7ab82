package notify

import (
	"fmt"
	"time"

	"github.com/kmestetica/agenda-service/internal/domain"
	"github.com/kmestetica/agenda-service/internal/integrations/whatsapp"
)

// MessageBuilder строит тексты сообщений для клиентов на португальском
type MessageBuilder struct{}

// NewMessageBuilder создает новый построитель сообщений
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{}
}

// ConfirmationMessage строит текст подтверждения записи.
// Перед выходными (пятница и суббота) добавляется пожелание
// хорошего уик-энда.
func (b *MessageBuilder) ConfirmationMessage(appt *domain.Appointment) string {
	msg := fmt.Sprintf(
		"Olá %s, confirmamos seu agendamento para %s às %s. Por favor, chegue com 5 minutos de antecedência.",
		appt.ClientName,
		whatsapp.FormatDateBR(appt.DateKey()),
		appt.StartTime,
	)

	weekday := appt.Date.Weekday()
	if weekday == time.Friday || weekday == time.Saturday {
		msg += " Ótimo fim de semana! ✨"
	}

	return msg
}
