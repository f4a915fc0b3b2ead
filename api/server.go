/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/compute          Compute a lease, store the run
  /api/runs/*           Stored runs: list, fetch, delete, export
  /api/scenarios/*      Demo scenarios
  /api/accounts         Chart of accounts
  /api/reset            Store reset (dev only)
  /                     Endpoint index (HTML)

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Compute route
		r.Post("/compute", h.ComputeLease)

		// Run routes
		r.Route("/runs", func(r chi.Router) {
			r.Get("/", h.ListRuns)
			r.Get("/latest", h.GetLatestRun)
			r.Get("/{runID}", h.GetRun)
			r.Delete("/{runID}", h.DeleteRun)
			r.Get("/{runID}/export.xlsx", h.ExportWorkbook)
			r.Get("/{runID}/export/{table}.csv", h.ExportTableCSV)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})

		// Reference routes
		r.Get("/accounts", h.ListAccounts)

		// Admin routes
		r.Post("/reset", h.ResetStore)
	})

	// Endpoint index for anyone poking the server with a browser.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Lease Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Lease Engine API</h1>
<p>Amortization schedules, journal entries, and exports for lease contracts.</p>
<h2>API Endpoints</h2>
<ul>
<li><code>POST /api/compute</code> - Compute a lease and store the run</li>
<li><a href="/api/runs">/api/runs</a> - List stored runs</li>
<li><a href="/api/runs/latest">/api/runs/latest</a> - Most recent run</li>
<li><a href="/api/scenarios">/api/scenarios</a> - List demo scenarios</li>
<li><a href="/api/accounts">/api/accounts</a> - Chart of accounts</li>
</ul>
</body>
</html>`))
	})

	return r
}
