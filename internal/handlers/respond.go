package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"transcript-ai/internal/models"
	"transcript-ai/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr  *services.ValidationError
		referenceErr   *services.InvalidReferenceError
		unavailableErr *services.TranscriptUnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationErr.Fields, r))
	case errors.As(err, &referenceErr):
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_VIDEO_URL", "Could not find a YouTube video ID in the URL", r))
	case errors.As(err, &unavailableErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("TRANSCRIPT_UNAVAILABLE", services.TranscriptUnavailableMessage, r))
	default:
		log.Printf("request %s failed: %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusBadGateway, errorResp("UPSTREAM_ERROR", "The summary could not be generated. Please try again later.", r))
	}
}
