package cancel_appointment

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kmestetica/agenda-service/internal/api/handlers"
)

const (
	msgInvalidID = "некорректный идентификатор записи"
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

// Handle DELETE /api/v1/appointments/{id}
// Отмена идемпотентна: повторный запрос на уже отменённую запись
// возвращает тот же успешный ответ.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	publicID, err := uuid.Parse(vars["id"])
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Cancel(r.Context(), publicID); err != nil {
		h.logger.Error("DELETE /appointments/{id} - Failed to cancel appointment %s: %v", publicID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment cancelled: id=%s", publicID)
	handlers.RespondNoContent(w)
}
