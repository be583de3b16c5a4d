// File: internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abudi-09/Chat-App/internal/services/messaging"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError emits the uniform error body. Internal details never reach
// the client; anything worth keeping is logged before calling this.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeMessagingError maps the service error taxonomy onto HTTP statuses.
// Validation failures echo their message; everything else is generic.
func writeMessagingError(w http.ResponseWriter, err error) {
	switch {
	case messaging.IsValidation(err):
		msg := "invalid request"
		var msgErr *messaging.Error
		if errors.As(err, &msgErr) {
			msg = msgErr.Message
		}
		writeError(w, http.StatusBadRequest, msg)
	case messaging.IsNotFound(err):
		writeError(w, http.StatusNotFound, "not found")
	case messaging.IsUpstream(err):
		writeError(w, http.StatusBadGateway, "image upload failed")
	default:
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
