package export_appointments

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/kmestetica/agenda-service/internal/api/handlers"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments/export
// Выгрузка сначала собирается в буфер: при ошибке хранилища клиент
// получает JSON ошибку, а не обрезанный CSV.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(r.Context(), &buf); err != nil {
		h.logger.Error("GET /admin/appointments/export - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("agendamentos-%s.csv", time.Now().Format("2006-01-02"))
	size := buf.Len()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)

	h.logger.Info("GET /admin/appointments/export - Export completed: bytes=%d", size)
}
