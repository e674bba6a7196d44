// Package handlers implements the server-rendered HTTP form handlers.
package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/rohanjx/workouthub-backend/internal/middleware"
	"github.com/rohanjx/workouthub-backend/internal/services"
	"github.com/rohanjx/workouthub-backend/internal/templates"
	"github.com/rohanjx/workouthub-backend/pkg/utils"
)

const flashCookieName = "flash"

// Server bundles the application services the handlers call into. The
// current user always arrives through the request context set by
// middleware.RequireAuth; handlers never resolve identity themselves.
type Server struct {
	auth     *services.AuthService
	workouts *services.WorkoutService
	tmpl     *templates.Renderer
	secret   string
	secure   bool // mark cookies Secure in production
}

// New creates a handler Server.
func New(auth *services.AuthService, workouts *services.WorkoutService, tmpl *templates.Renderer, secret string, secure bool) *Server {
	return &Server{auth: auth, workouts: workouts, tmpl: tmpl, secret: secret, secure: secure}
}

// RequireAuth returns the auth middleware wired to this server's services.
func (s *Server) RequireAuth() func(http.Handler) http.Handler {
	return middleware.RequireAuth(s.auth, s.secret)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    utils.SignValue(s.secret, token),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(services.SessionDuration.Seconds()),
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// setFlash queues a one-shot message shown on the next rendered page.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookieName, Value: "", Path: "/", MaxAge: -1})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.tmpl.Render(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

func internalError(w http.ResponseWriter) {
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
