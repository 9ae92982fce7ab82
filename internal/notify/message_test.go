package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kmestetica/agenda-service/internal/domain"
	"github.com/kmestetica/agenda-service/pkg/types"
)

func TestConfirmationMessage_Weekday(t *testing.T) {
	appt := &domain.Appointment{
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), // понедельник
		StartTime:  types.TimeString("10:00"),
		ClientName: "Maria",
	}

	msg := NewMessageBuilder().ConfirmationMessage(appt)

	assert.Contains(t, msg, "Olá Maria")
	assert.Contains(t, msg, "02/03/2026")
	assert.Contains(t, msg, "às 10:00")
	assert.Contains(t, msg, "5 minutos de antecedência")
	assert.NotContains(t, msg, "fim de semana")
}

func TestConfirmationMessage_Weekend(t *testing.T) {
	friday := &domain.Appointment{
		Date:       time.Date(2026, 3, 6, 0, 0, 0, 0, time.Local),
		StartTime:  types.TimeString("14:00"),
		ClientName: "Ana",
	}
	saturday := &domain.Appointment{
		Date:       time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local),
		StartTime:  types.TimeString("09:00"),
		ClientName: "Ana",
	}

	builder := NewMessageBuilder()
	assert.Contains(t, builder.ConfirmationMessage(friday), "fim de semana")
	assert.Contains(t, builder.ConfirmationMessage(saturday), "fim de semana")
}
