package get_available_days

import (
	getAvailableDays "github.com/kmestetica/agenda-service/internal/usecase/get_available_days"
)

// DayResponse HTTP модель одного дня окна
type DayResponse struct {
	Date    string `json:"date"`    // "2026-03-02"
	Weekday string `json:"weekday"` // "Monday"
	Day     int    `json:"day"`     // день месяца для календаря
}

// DaysResponse HTTP модель окна дней
type DaysResponse struct {
	Days []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *DaysResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Date:    d.DateKey(),
			Weekday: d.Weekday.String(),
			Day:     d.DayNumber(),
		})
	}
	return &DaysResponse{Days: days}
}
