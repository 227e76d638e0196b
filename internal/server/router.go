package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/faisalmelhim/AI-Hackathon/internal/api"
	"github.com/faisalmelhim/AI-Hackathon/internal/api/handlers"
	"github.com/faisalmelhim/AI-Hackathon/internal/api/middleware"
)

type RouterConfig struct {
	UploadHandler   *handlers.UploadHandler
	AnalyzeHandler  *handlers.AnalyzeHandler
	MemoHandler     *handlers.MemoHandler
	ModelingHandler *handlers.ModelingHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Uploads carry whole documents; everything else is small JSON.
	const maxBodyBytes int64 = 25 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))
	r.Use(middleware.RateLimit(rate.Limit(5), 10))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", cfg.UploadHandler.Upload)

		r.Route("/analyze/{documentID}", func(r chi.Router) {
			r.Post("/", cfg.AnalyzeHandler.Create)
			r.Get("/", cfg.AnalyzeHandler.Get)
		})

		r.Post("/memo/generate", cfg.MemoHandler.Generate)
		r.Post("/model/dcf", cfg.ModelingHandler.RunDCF)
	})

	return r
}
