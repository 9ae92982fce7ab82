package admin_login

import (
	"crypto/subtle"
	"net/http"

	"github.com/kmestetica/agenda-service/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgWrongPassword      = "неверный пароль"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

type Handler struct {
	password string
	sessions SessionManager
	logger   Logger
}

func NewHandler(password string, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		password: password,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		h.logger.Warn("POST /admin/login - Wrong password attempt")
		handlers.RespondUnauthorized(w, msgWrongPassword)
		return
	}

	if err := h.sessions.SetAdmin(w); err != nil {
		h.logger.Error("POST /admin/login - Failed to set session cookie: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in")
	handlers.RespondNoContent(w)
}

// HandleLogout POST /api/v1/admin/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.logger.Info("POST /admin/logout - Admin logged out")
	handlers.RespondNoContent(w)
}
