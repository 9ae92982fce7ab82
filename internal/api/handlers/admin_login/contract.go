package admin_login

import "net/http"

// SessionManager интерфейс управления cookie администратора
type SessionManager interface {
	SetAdmin(w http.ResponseWriter) error
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
