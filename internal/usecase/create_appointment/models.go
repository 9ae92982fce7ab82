package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/kmestetica/agenda-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Date          time.Time        // дата записи (без времени)
	StartTime     types.TimeString // время начала слота (например, "10:00")
	ClientName    string
	ClientContact string // номер WhatsApp
}

// Response модель ответа с созданной записью
type Response struct {
	PublicID         uuid.UUID
	Date             time.Time
	StartTime        types.TimeString
	DurationMinutes  int
	ClientName       string
	ClientContact    string
	ConfirmationText string
	CreatedAt        time.Time
}
