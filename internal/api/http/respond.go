package http

import (
	"encoding/json"
	"net/http"

	"fatherhood-backend/internal/logger"
	"fatherhood-backend/internal/validation"
)

// errorResponse is the error envelope shared by every endpoint. Datastore
// detail never reaches the client; messages are fixed per error class.
type errorResponse struct {
	Error         string                  `json:"error"`
	Message       string                  `json:"message,omitempty"`
	Details       []validation.FieldError `json:"details,omitempty"`
	ValidStatuses []string                `json:"validStatuses,omitempty"`
}

func respond(w http.ResponseWriter, status int, data any) {
	if status == http.StatusNoContent || data == nil {
		w.WriteHeader(status)
		return
	}

	rawJSON, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(rawJSON)
}

func respondErr(w http.ResponseWriter, status int, errMsg, message string) {
	respond(w, status, errorResponse{Error: errMsg, Message: message})
}
