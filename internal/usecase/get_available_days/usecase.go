package get_available_days

import (
	"context"
	"fmt"

	"github.com/kmestetica/agenda-service/internal/domain"
)

// maxWindowSize верхняя граница размера окна: защита от запроса
// абсурдно длинного календаря
const maxWindowSize = 60

// UseCase use case расчёта окна дней: идём вперёд от сегодняшнего дня,
// пропуская закрытые дни, пока не наберём windowSize открытых
type UseCase struct {
	schedule      *domain.WeekSchedule
	defaultWindow int
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// defaultWindow используется, когда клиент не указал размер окна;
// 0 означает значение по умолчанию из domain.
func NewUseCase(schedule *domain.WeekSchedule, defaultWindow int, logger Logger) *UseCase {
	if defaultWindow <= 0 {
		defaultWindow = domain.DefaultDayWindowSize
	}
	return &UseCase{
		schedule:      schedule,
		defaultWindow: defaultWindow,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения окна дней
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	windowSize := req.WindowSize
	if windowSize == 0 {
		windowSize = uc.defaultWindow
	}
	if windowSize < 0 || windowSize > maxWindowSize {
		uc.logger.Warn("GetAvailableDays: invalid window size %d", windowSize)
		return nil, fmt.Errorf("%w: window size must be between 1 and %d", ErrInvalidInput, maxWindowSize)
	}

	today := uc.timeProvider.Now()

	days := make([]domain.DaySlot, 0, windowSize)
	for offset := 0; len(days) < windowSize; offset++ {
		date := today.AddDate(0, 0, offset)
		if !uc.schedule.IsOpen(date) {
			continue
		}
		days = append(days, domain.DaySlot{
			Date:    date,
			Weekday: date.Weekday(),
		})
	}

	uc.logger.Info("GetAvailableDays: collected %d open days starting %s",
		len(days), today.Format(domain.DateFormat))

	return &Response{Days: days}, nil
}
