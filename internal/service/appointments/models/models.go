package models

import (
	"time"

	"github.com/kmestetica/agenda-service/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Date *time.Time `json:"date,omitempty"` // фильтр по дню (опционально)
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	PublicID         string  `json:"id"`
	Date             string  `json:"date"`      // "2026-03-02"
	StartTime        string  `json:"startTime"` // "10:00"
	ClientName       string  `json:"clientName"`
	ClientContact    string  `json:"clientContact"`
	ConfirmationText *string `json:"confirmationText,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// OccupancyDay статистика занятости одного дня
type OccupancyDay struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Booked   int    `json:"booked"`
	Capacity int    `json:"capacity"`
}

// OccupancyResponse ответ со статистикой занятости по дням
type OccupancyResponse struct {
	Days []OccupancyDay `json:"days"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		PublicID:         a.PublicID.String(),
		Date:             a.Date.Format(domain.DateFormat),
		StartTime:        a.StartTime.String(),
		ClientName:       a.ClientName,
		ClientContact:    a.ClientContact,
		ConfirmationText: a.ConfirmationText,
		CreatedAt:        a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: out}
}
