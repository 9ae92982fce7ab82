package clear_appointments

import (
	"net/http"

	"github.com/kmestetica/agenda-service/internal/api/handlers"
)

// confirmHeader заголовок подтверждения: защита от случайного
// вызова полного сброса агенды
const confirmHeader = "X-Confirm-Clear"

const (
	msgConfirmationRequired = "требуется заголовок подтверждения X-Confirm-Clear: yes"
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

// Handle DELETE /api/v1/admin/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(confirmHeader) != "yes" {
		h.logger.Warn("DELETE /admin/appointments - Missing confirmation header")
		handlers.RespondBadRequest(w, msgConfirmationRequired)
		return
	}

	if err := h.service.ClearAll(r.Context()); err != nil {
		h.logger.Error("DELETE /admin/appointments - Failed to clear appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/appointments - All appointments cleared")
	handlers.RespondNoContent(w)
}
