package create_appointment

import (
	"time"

	"github.com/kmestetica/agenda-service/internal/domain"
	"github.com/kmestetica/agenda-service/internal/integrations/whatsapp"
	createAppointment "github.com/kmestetica/agenda-service/internal/usecase/create_appointment"
	"github.com/kmestetica/agenda-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date          string `json:"date"`      // "2026-03-02"
	StartTime     string `json:"startTime"` // "10:00"
	ClientName    string `json:"clientName"`
	ClientContact string `json:"clientContact"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID               string `json:"id"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	DurationMinutes  int    `json:"durationMinutes"`
	ClientName       string `json:"clientName"`
	ClientContact    string `json:"clientContact"`
	ConfirmationText string `json:"confirmationText"`
	WhatsappLink     string `json:"whatsappLink,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата интерпретируется в локальной зоне сервера: расписание салона
// привязано к локальному календарному дню.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Date:          date,
		StartTime:     startTime,
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Click-to-chat ссылка строится по возможности: некорректный номер
// не мешает вернуть созданную запись.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:               resp.PublicID.String(),
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		ClientName:       resp.ClientName,
		ClientContact:    resp.ClientContact,
		ConfirmationText: resp.ConfirmationText,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}

	link, err := whatsapp.ConfirmationLink(
		resp.ClientContact,
		resp.ClientName,
		resp.Date.Format(domain.DateFormat),
		resp.StartTime,
	)
	if err == nil {
		out.WhatsappLink = link
	}

	return out
}
