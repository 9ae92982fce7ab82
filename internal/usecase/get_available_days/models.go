package get_available_days

import "github.com/kmestetica/agenda-service/internal/domain"

// Request модель запроса окна дней
type Request struct {
	WindowSize int // количество открытых дней; 0 - значение из расписания по умолчанию
}

// Response модель ответа со скользящим окном открытых дней
type Response struct {
	Days []domain.DaySlot
}
