package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mamaeEmFormaAPI/internal/lock"
	"mamaeEmFormaAPI/services"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps engine errors to status codes. Storage
// failures are logged and hidden from the client.
func respondWithServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, services.ErrTooManyConflicts):
		respondWithError(w, http.StatusConflict, "Progress is being updated elsewhere, try again")
	case errors.Is(err, lock.ErrNotAcquired):
		respondWithError(w, http.StatusServiceUnavailable, "Progress is busy, try again")
	case errors.Is(err, context.DeadlineExceeded):
		respondWithError(w, http.StatusGatewayTimeout, "Request timed out")
	default:
		log.Printf("Handler: %s failed: %v", op, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to "+op)
	}
}
