package get_occupancy

import (
	"context"

	"github.com/kmestetica/agenda-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Occupancy(ctx context.Context) (*models.OccupancyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
