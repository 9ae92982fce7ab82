package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/kmestetica/agenda-service/pkg/types"
)

// Appointment represents a committed booking occupying one slot
// for a service-duration window.
type Appointment struct {
	ID       int64     // внутренний ключ БД, наружу не отдаётся
	PublicID uuid.UUID // идентификатор для клиентов (отмена, админка)

	Date      time.Time        // календарный день, без компонента времени
	StartTime types.TimeString // время начала, выровнено по сетке каталога

	ClientName    string
	ClientContact string // номер WhatsApp, непустая строка без доп. валидации

	// ConfirmationText текст подтверждения для отправки клиенту.
	// На логику бронирования не влияет.
	ConfirmationText *string

	CreatedAt time.Time
}

// DateKey returns the calendar-day key in YYYY-MM-DD form.
func (a *Appointment) DateKey() string {
	return a.Date.Format(DateFormat)
}

// OccupiesSlot returns true if the appointment sits exactly on the given
// (date, time) pair.
func (a *Appointment) OccupiesSlot(dateKey string, start types.TimeString) bool {
	return a.DateKey() == dateKey && a.StartTime == start
}

// AppointmentsFilter фильтр для выборки записей из хранилища
type AppointmentsFilter struct {
	Date *time.Time // конкретный день; nil - все записи
}
