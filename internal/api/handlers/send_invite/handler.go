package send_invite

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kmestetica/agenda-service/internal/api/handlers"
	"github.com/kmestetica/agenda-service/internal/integrations/whatsapp"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "имя и номер WhatsApp обязательны"
	msgInvalidPhone       = "некорректный номер WhatsApp"
)

// InviteRequest HTTP request model
type InviteRequest struct {
	ClientName    string `json:"clientName"`
	ClientContact string `json:"clientContact"`
}

// InviteResponse HTTP response model
type InviteResponse struct {
	WhatsappLink string `json:"whatsappLink"`
	Sent         bool   `json:"sent"`
}

type Handler struct {
	sender MessageSender
	appURL string
	logger Logger
}

func NewHandler(sender MessageSender, appURL string, logger Logger) *Handler {
	return &Handler{
		sender: sender,
		appURL: appURL,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/invites
// Строит click-to-chat ссылку с приглашением; при настроенном
// отправителе дополнительно отправляет приглашение через Z-API.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InviteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/invites - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	name := strings.TrimSpace(req.ClientName)
	contact := strings.TrimSpace(req.ClientContact)
	if name == "" || contact == "" {
		h.logger.Warn("POST /admin/invites - Missing client name or contact")
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	link, err := whatsapp.InviteLink(contact, name, h.appURL)
	if err != nil {
		if errors.Is(err, whatsapp.ErrInvalidPhone) {
			h.logger.Warn("POST /admin/invites - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)
			return
		}
		h.logger.Error("POST /admin/invites - Failed to build invite link: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	sent := false
	if h.sender != nil {
		phone, _ := whatsapp.NormalizePhone(contact)
		if err := h.sender.SendText(r.Context(), phone, whatsapp.InviteMessage(name, h.appURL)); err != nil {
			h.logger.Error("POST /admin/invites - Failed to send invite: %v", err)
		} else {
			sent = true
		}
	}

	h.logger.Info("POST /admin/invites - Invite prepared for %s (sent=%v)", name, sent)
	handlers.RespondJSON(w, http.StatusOK, InviteResponse{WhatsappLink: link, Sent: sent})
}
