// Package httpserver exposes the ask service over HTTP. This is the primary
// transport; the Lambda handler in the top-level handler package serves the
// same contract for serverless deployments.
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"fynorra-assistant/internal/domain"
	"fynorra-assistant/internal/usecase"
)

const requestTimeout = 60 * time.Second

type askUseCase interface {
	Ask(ctx context.Context, in usecase.AskInput) (domain.Answer, error)
}

// NewRouter builds the HTTP routing table around the ask service.
func NewRouter(uc askUseCase) http.Handler {
	r := chi.NewRouter()
	// Allow-all CORS so browser frontends can call the scaffold directly.
	r.Use(cors.AllowAll().Handler)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Post("/ask", newAskHandler(uc))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return r
}
