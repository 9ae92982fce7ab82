package get_available_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kmestetica/agenda-service/internal/api/handlers"
	getAvailableDays "github.com/kmestetica/agenda-service/internal/usecase/get_available_days"
)

const (
	msgInvalidWindow = "некорректный размер окна дней"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda/days
// Query params: window (optional, количество открытых дней)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	windowSize := 0
	if windowStr := r.URL.Query().Get("window"); windowStr != "" {
		parsed, err := strconv.Atoi(windowStr)
		if err != nil {
			h.logger.Warn("GET /agenda/days - Invalid window size: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)
			return
		}
		windowSize = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDays.Request{WindowSize: windowSize})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /agenda/days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /agenda/days - Failed to get days: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agenda/days - Days retrieved successfully: count=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
