package middleware

import (
	"encoding/json"
	"net/http"
)

// respondError отправляет JSON ответ с ошибкой
func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
