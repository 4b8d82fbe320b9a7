package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"transcript-ai/internal/handlers"
	"transcript-ai/internal/middleware"
)

func New(
	summaryHandler *handlers.SummaryHandler,
	videoHandler *handlers.VideoHandler,
	allowedOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigin))

	r.Get("/", handlers.Index)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/options", handlers.Options)

		// ──── Video Routes ────
		r.Route("/videos", func(r chi.Router) {
			r.Get("/preview", videoHandler.Preview)
		})

		// ──── Summary Routes ────
		r.Route("/summaries", func(r chi.Router) {
			r.Post("/", summaryHandler.Generate)
			r.Post("/download", summaryHandler.Download)
		})
	})

	return r
}
