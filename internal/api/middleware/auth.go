package middleware

import (
	"encoding/json"
	"net/http"
)

// Auth проверяет наличие заголовка X-User-ID
//
// Сервис доверяет внешнему API gateway: заголовок проставляется им
// после аутентификации, здесь проверяется только его наличие
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-User-ID") == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "требуется заголовок X-User-ID",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
