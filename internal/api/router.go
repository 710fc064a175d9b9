package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/nexus/internal/analysis"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(svc *analysis.Service, authEnabled bool, token string) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/graph", h.Graph)
	r.Get("/open", h.Open)

	return r
}
