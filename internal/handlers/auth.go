package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rohanjx/workouthub-backend/internal/middleware"
	"github.com/rohanjx/workouthub-backend/internal/services"
)

type loginPage struct {
	Flash string
	Email string
}

type registerPage struct {
	Error string
	Name  string
	Email string
}

// Login serves the login form on GET and attempts authentication on POST.
// Failure messages distinguish an unknown email from a wrong password,
// matching the product's existing copy.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, "login.html", loginPage{Flash: popFlash(w, r)})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	token, err := s.auth.Login(r.Context(), email, password)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		setFlash(w, "Email does not exist, try again!")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case errors.Is(err, services.ErrBadPassword):
		setFlash(w, "Wrong Password!!")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case err != nil:
		log.Printf("login: %v", err)
		internalError(w)
		return
	}

	s.setSessionCookie(w, token)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// Register serves the registration form on GET and creates a user on POST.
// A duplicate email redisplays the form with a message and changes nothing.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, "register.html", registerPage{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	_, err := s.auth.Register(r.Context(), name, email, password)
	switch {
	case errors.Is(err, services.ErrDuplicateEmail), errors.Is(err, services.ErrMissingField):
		s.render(w, "register.html", registerPage{Error: err.Error(), Name: name, Email: email})
		return
	case err != nil:
		log.Printf("register: %v", err)
		internalError(w)
		return
	}

	setFlash(w, "Registered! Please log in.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session and redirects to the login page.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.SessionToken(r, s.secret); ok {
		_ = s.auth.Logout(r.Context(), token)
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
