package export_appointments

import (
	"context"
	"io"
)

type AppointmentsService interface {
	ExportCSV(ctx context.Context, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
