package get_available_slots

import (
	"time"

	"github.com/kmestetica/agenda-service/internal/domain"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Date time.Time // дата, для которой запрашивается каталог (без времени)
}

// Response модель ответа с каталогом слотов дня
type Response struct {
	Date            time.Time                 // дата, на которую запрашивались слоты
	DurationMinutes int                       // длительность услуги
	Slots           []domain.SlotAvailability // весь каталог дня с флагами доступности
}
