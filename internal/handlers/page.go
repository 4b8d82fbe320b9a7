package handlers

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"transcript-ai/internal/models"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	WordLimits       []int
	Languages        []string
	DefaultWordLimit int
	DefaultLanguage  string
	FileName         string
}

func Index(w http.ResponseWriter, r *http.Request) {
	opts := optionsResponse()
	data := pageData{
		WordLimits:       opts.WordLimits,
		Languages:        opts.Languages,
		DefaultWordLimit: opts.DefaultWordLimit,
		DefaultLanguage:  opts.DefaultLanguage,
		FileName:         models.SummaryFileName,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("failed to render index page: %v", err)
	}
}
