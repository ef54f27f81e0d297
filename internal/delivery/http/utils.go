package http

import (
	"encoding/json"
	"net/http"

	"github.com/frontandrew/drivesure/internal/delivery/http/middleware"
	"github.com/frontandrew/drivesure/internal/pkg/jwt"
)

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondError отправляет JSON ответ с ошибкой
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// respondData отправляет успешный ответ с данными
func respondData(w http.ResponseWriter, code int, data interface{}) {
	respondJSON(w, code, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// decodeJSON читает тело запроса (не больше 1 МБ)
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	return json.NewDecoder(r.Body).Decode(v)
}

// currentClaims возвращает claims текущего пользователя или отвечает 401
func currentClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return claims, true
}
