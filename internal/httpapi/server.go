// Package httpapi is the HTTP surface: GET /healthy, POST /route,
// /one-to-many, /one-to-preset whose JSON bodies mirror the CLI
// subcommands' inputs, plus a read-only GET /api/v1/routes,
// /api/v1/stops, /api/v1/stops/{id} browsing surface. Routing and
// middleware follow a standard chi + rs/cors setup.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/antigravity/transit-router/internal/app"
	"github.com/antigravity/transit-router/internal/catalog"
)

// NewRouter builds the full HTTP handler for a loaded App.
func NewRouter(a *app.App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
	r.Use(c.Handler)

	h := &handler{app: a, catalog: catalog.New(a.Feed)}

	r.Get("/healthy", h.healthy)
	r.Post("/route", h.route)
	r.Post("/one-to-many", h.oneToMany)
	r.Post("/one-to-preset", h.oneToPreset)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/routes", h.routes)
		r.Get("/stops", h.stops)
		r.Get("/stops/{id}", h.stopDetails)
	})

	return r
}

type handler struct {
	app     *app.App
	catalog *catalog.Catalog
}

func (h *handler) healthy(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
