package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rohanjx/workouthub-backend/internal/handlers"
)

// SetupRoutes registers the page routes. Everything touching workout entries
// or personalized data sits behind RequireAuth; anonymous requests to those
// routes redirect to the login page.
func SetupRoutes(r *chi.Mux, h *handlers.Server) {
	// Public routes: login and registration
	r.Get("/", h.Login)
	r.Post("/", h.Login)
	r.Get("/register", h.Register)
	r.Post("/register", h.Register)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth())
		r.Get("/home", h.Home)
		r.Post("/home", h.Home)
		r.Get("/add", h.Add)
		r.Post("/add", h.Add)
		r.Get("/workout/{exercise}", h.Workout)
		r.Post("/workout/{exercise}", h.Workout)
		r.Get("/logout", h.Logout)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
}
