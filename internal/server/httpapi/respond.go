package httpapi

import (
	"encoding/json"
	"net/http"
	"time"
)

// envelope is the uniform response shape for every endpoint.
type envelope struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

func writeEnvelope(w http.ResponseWriter, status int, typ, message string, data any) {
	if data == nil {
		data = struct{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		Type:      typ,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(http.TimeFormat),
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, "error", message, nil)
}

func writeSystemError(w http.ResponseWriter, message string) {
	writeEnvelope(w, http.StatusInternalServerError, "system error", message, nil)
}
