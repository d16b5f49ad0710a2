package handlers

import (
	"encoding/json"
	"net/http"
)

// Handler несёт собранный роутер сервиса.
type Handler struct {
	Router http.Handler
}

// writeJSON сериализует ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError — структурированная ошибка внешней границы. Внутренние причины
// наружу не отдаются, только фиксированные сообщения.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
