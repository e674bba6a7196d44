package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/rohanjx/workouthub-backend/internal/middleware"
	"github.com/rohanjx/workouthub-backend/internal/models"
	"github.com/rohanjx/workouthub-backend/internal/services"
)

type homePage struct {
	User     *models.User
	Workouts []models.WorkoutEntry
}

type workoutFormPage struct {
	User     *models.User
	Exercise string
	Error    string
	Form     map[string]string
}

// Home lists the current user's workout entries in insertion order.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	workouts, err := s.workouts.ListForUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("list workouts: %v", err)
		internalError(w)
		return
	}

	s.render(w, "home.html", homePage{User: user, Workouts: workouts})
}

// Add serves the generic add-workout form and logs an entry for the current
// user on POST. Validation failures redisplay the form with the message and
// the submitted values; nothing is written.
func (s *Server) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		s.render(w, "add.html", workoutFormPage{User: user, Form: map[string]string{}})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	form := formValues(r, "exercise", "date", "sets", "reps", "kgs")

	_, err := s.workouts.LogEntry(r.Context(), user.ID, form["exercise"], form["date"], form["sets"], form["reps"], form["kgs"])
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		s.render(w, "add.html", workoutFormPage{User: user, Error: verr.Message, Form: form})
		return
	}
	if err != nil {
		log.Printf("log workout: %v", err)
		internalError(w)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// Workout serves the pre-filled logging form for the exercise named in the
// URL path. POST converges on the same validated write path as Add.
func (s *Server) Workout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	raw := chi.URLParam(r, "exercise")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	exercise := services.NormalizeExercise(raw)
	if exercise == "" {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		s.render(w, "weights.html", workoutFormPage{User: user, Exercise: exercise, Form: map[string]string{}})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	form := formValues(r, "date", "sets", "reps", "kgs")

	_, err := s.workouts.LogEntry(r.Context(), user.ID, exercise, form["date"], form["sets"], form["reps"], form["kgs"])
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		s.render(w, "weights.html", workoutFormPage{User: user, Exercise: exercise, Error: verr.Message, Form: form})
		return
	}
	if err != nil {
		log.Printf("log workout: %v", err)
		internalError(w)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func formValues(r *http.Request, keys ...string) map[string]string {
	form := make(map[string]string, len(keys))
	for _, k := range keys {
		form[k] = r.PostFormValue(k)
	}
	return form
}
