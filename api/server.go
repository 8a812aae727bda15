/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/auth/*           Register, login, demo seeding (no token)
  /api/professionals/*  Professional management (token required)
  /api/vacations/*      Vacation period management (token required)
  /api/dashboard        Aggregated impact view (token required)
  /health               Liveness probe

The register and login endpoints sit behind a per-IP rate limiter;
every authenticated route also passes the demo write guard.

SEE ALSO:
  - handlers.go: Handler implementations
  - middleware.go: requireAuth, rate limiter, demo guard
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, corsOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// 5 attempts per 15 minutes per IP on the credential endpoints.
	authLimiter := newRateLimiter(15*time.Minute, 5)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authLimiter.limit(h.Register))
			r.Post("/login", authLimiter.limit(h.Login))
			r.Post("/init-demo", h.InitDemo)
		})

		// Everything below needs a valid token.
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Use(h.blockDemoWrites)

			r.Route("/professionals", func(r chi.Router) {
				r.Get("/", h.ListProfessionals)
				r.Post("/", h.CreateProfessional)
				r.Get("/{id}", h.GetProfessional)
				r.Put("/{id}", h.UpdateProfessional)
				r.Delete("/{id}", h.DeleteProfessional)
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Get("/", h.ListVacations)
				r.Post("/", h.CreateVacation)
				r.Put("/{id}", h.UpdateVacation)
				r.Delete("/{id}", h.DeleteVacation)
			})

			r.Get("/dashboard", h.Dashboard)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
