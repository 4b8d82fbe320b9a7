package handlers

import (
	"net/http"

	"transcript-ai/internal/models"
)

func optionsResponse() models.OptionsResponse {
	return models.OptionsResponse{
		WordLimits:       models.WordLimits,
		Languages:        models.Languages,
		DefaultWordLimit: models.DefaultWordLimit,
		DefaultLanguage:  models.DefaultLanguage,
	}
}

func Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, optionsResponse())
}
