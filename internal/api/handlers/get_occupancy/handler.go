package get_occupancy

import (
	"net/http"

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

// Handle GET /api/v1/admin/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Occupancy(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/occupancy - Failed to get occupancy: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/occupancy - Occupancy retrieved: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
