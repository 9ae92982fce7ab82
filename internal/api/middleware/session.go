package middleware

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

const sessionName = "agenda_admin_session"

// SessionManager управляет подписанной cookie администратора
type SessionManager struct {
	sc *securecookie.SecureCookie
}

// NewSessionManager создает менеджер сессий с ключами подписи и шифрования
func NewSessionManager(hashKey, blockKey []byte) *SessionManager {
	return &SessionManager{sc: securecookie.New(hashKey, blockKey)}
}

// SetAdmin выставляет cookie администратора
func (s *SessionManager) SetAdmin(w http.ResponseWriter) error {
	value := map[string]string{"role": "admin"}
	encoded, err := s.sc.Encode(sessionName, value)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear сбрасывает cookie администратора
func (s *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// IsAdmin проверяет валидность cookie администратора
func (s *SessionManager) IsAdmin(r *http.Request) bool {
	c, err := r.Cookie(sessionName)
	if err != nil {
		return false
	}
	value := map[string]string{}
	if err := s.sc.Decode(sessionName, c.Value, &value); err != nil {
		return false
	}
	return value["role"] == "admin"
}
