package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"langportal/internal/database"
	"langportal/internal/repository"
	"langportal/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondWithJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithServiceError maps the core's error kinds to status codes:
// not-found to 404, rejected input to 400, constraint violations to 409,
// anything else to 500.
func respondWithServiceError(w http.ResponseWriter, userMsg string, err error) {
	var vErr *validation.Error
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondWithJSON(w, http.StatusNotFound, errorResponse{Error: userMsg + " not found"})
	case errors.As(err, &vErr):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Error()})
	case database.IsConstraintViolation(err):
		respondWithError(w, http.StatusConflict, "Request conflicts with existing data", userMsg, err)
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", userMsg, err)
	}
}
