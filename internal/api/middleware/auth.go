package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// AdminAuth пропускает только запросы с валидной cookie администратора
func AdminAuth(sessions *SessionManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAdmin(r) {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "требуется вход администратора"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
